package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		property string
		class    AttributeClass
		key      string
	}{
		{"priority", AttrScalar, "priority"},
		{"start", AttrScalar, "start"},
		{"annotation_1700000000", AttrAnnotation, "1700000000"},
		{"tag_work", AttrTag, "work"},
		{"dep_6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60", AttrDependency, "6f1c3a2e-6b0e-4a8e-9d3e-1b2c3d4e5f60"},
		{"tags", AttrScalar, "tags"},
		{"depends", AttrScalar, "depends"},
		{"", AttrScalar, ""},
	}

	for _, tt := range tests {
		t.Run(tt.property, func(t *testing.T) {
			attr := Classify(tt.property)
			if attr.Class != tt.class {
				t.Errorf("expected class %s, got %s", tt.class, attr.Class)
			}
			if attr.Key != tt.key {
				t.Errorf("expected key %q, got %q", tt.key, attr.Key)
			}
		})
	}
}

func TestSyntheticPropertyNames(t *testing.T) {
	if got := TagProperty("home"); got != "tag_home" {
		t.Errorf("TagProperty: got %s", got)
	}
	if got := AnnotationProperty(1700000000); got != "annotation_1700000000" {
		t.Errorf("AnnotationProperty: got %s", got)
	}
	if got := DependencyProperty("abc"); got != "dep_abc" {
		t.Errorf("DependencyProperty: got %s", got)
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("priority"); got != "Priority" {
		t.Errorf("expected Priority, got %s", got)
	}
	if got := Capitalize(""); got != "" {
		t.Errorf("expected empty, got %s", got)
	}
}
