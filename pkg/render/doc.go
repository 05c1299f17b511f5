// Package render and its subpackages implement the rendering collaborator:
// they turn placement records into visible artifacts.
//
// Two visualization types are supported:
//
//   - scene: an oblique 2D projection of the 3D world (sink package),
//     rendered as SVG or exported as a JSON draw list
//   - hierarchy: the leader → teacher → student relation graph
//     (hierarchy package), rendered via Graphviz
//
// The layout generator knows nothing about any of this; renderers consume
// the placement records it hands over and nothing else.
package render
