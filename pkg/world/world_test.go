package world

import (
	"testing"
)

func TestVec3Add(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	got := v.Add(Vec3{X: 10, Y: -2, Z: 0.5})
	want := Vec3{X: 11, Y: 0, Z: 3.5}
	if got != want {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestDisplayLabel(t *testing.T) {
	p := Placement{ID: "Teacher_1"}
	if p.DisplayLabel() != "Teacher_1" {
		t.Errorf("DisplayLabel should fall back to ID, got %q", p.DisplayLabel())
	}

	p.Label = "Mrs. Smith"
	if p.DisplayLabel() != "Mrs. Smith" {
		t.Errorf("DisplayLabel should prefer Label, got %q", p.DisplayLabel())
	}
}

func TestCategoryPredicates(t *testing.T) {
	leader := Placement{Category: CategoryLeader}
	if !leader.IsLeader() || leader.IsTeacher() || leader.IsStudent() {
		t.Error("leader predicates wrong")
	}
	teacher := Placement{Category: CategoryTeacher}
	if !teacher.IsTeacher() || teacher.IsLeader() {
		t.Error("teacher predicates wrong")
	}
	student := Placement{Category: CategoryStudent}
	if !student.IsStudent() || student.IsTeacher() {
		t.Error("student predicates wrong")
	}
}

func TestValidate(t *testing.T) {
	valid := []Placement{
		{ID: "Leader_phi", Category: CategoryLeader, Size: 75},
		{ID: "Teacher_1", Category: CategoryTeacher, Size: 50},
		{ID: "Teacher_1_Student_1", Category: CategoryStudent, Size: 40, ParentID: "Teacher_1"},
	}

	tests := []struct {
		name       string
		placements []Placement
		wantErr    bool
	}{
		{"empty set", nil, false},
		{"valid set", valid, false},
		{"empty id", []Placement{{Category: CategoryLeader, Size: 10}}, true},
		{"duplicate id", []Placement{
			{ID: "a", Category: CategoryLeader, Size: 10},
			{ID: "a", Category: CategoryTeacher, Size: 10},
		}, true},
		{"unknown category", []Placement{{ID: "a", Category: "boss", Size: 10}}, true},
		{"zero size", []Placement{{ID: "a", Category: CategoryLeader, Size: 0}}, true},
		{"negative size", []Placement{{ID: "a", Category: CategoryLeader, Size: -5}}, true},
		{"dangling parent", []Placement{
			{ID: "s", Category: CategoryStudent, Size: 10, ParentID: "nope"},
		}, true},
		{"parent not a teacher", []Placement{
			{ID: "l", Category: CategoryLeader, Size: 10},
			{ID: "s", Category: CategoryStudent, Size: 10, ParentID: "l"},
		}, true},
		{"student without parent", []Placement{
			{ID: "s", Category: CategoryStudent, Size: 10},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.placements)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateForwardParentReference(t *testing.T) {
	// A student may appear before its teacher in the slice.
	placements := []Placement{
		{ID: "s", Category: CategoryStudent, Size: 10, ParentID: "t"},
		{ID: "t", Category: CategoryTeacher, Size: 10},
	}
	if err := Validate(placements); err != nil {
		t.Errorf("forward parent reference should be allowed: %v", err)
	}
}

func TestCountByCategory(t *testing.T) {
	placements := []Placement{
		{ID: "a", Category: CategoryLeader},
		{ID: "b", Category: CategoryTeacher},
		{ID: "c", Category: CategoryTeacher},
		{ID: "d", Category: CategoryStudent},
	}
	counts := CountByCategory(placements)
	if counts[CategoryLeader] != 1 || counts[CategoryTeacher] != 2 || counts[CategoryStudent] != 1 {
		t.Errorf("CountByCategory = %v", counts)
	}
}
