package domain

import "strings"

// Property name prefixes for per-item synthetic attributes
const (
	AnnotationPrefix = "annotation_"
	TagPrefix        = "tag_"
	DependencyPrefix = "dep_"
)

// Well-known task properties
const (
	PropStart       = "start"
	PropEnd         = "end"
	PropModified    = "modified"
	PropEntry       = "entry"
	PropStatus      = "status"
	PropDescription = "description"
	PropProject     = "project"

	// Legacy aggregates, superseded by tag_* and dep_* attributes
	PropTags    = "tags"
	PropDepends = "depends"
)

// AttributeClass is the category of a task property
type AttributeClass int

const (
	AttrScalar AttributeClass = iota
	AttrAnnotation
	AttrTag
	AttrDependency
)

func (c AttributeClass) String() string {
	switch c {
	case AttrScalar:
		return "Scalar"
	case AttrAnnotation:
		return "Annotation"
	case AttrTag:
		return "Tag"
	case AttrDependency:
		return "Dependency"
	default:
		return "Unknown"
	}
}

// Attribute is a classified property name. Key holds the property name for
// scalars, the entry key for annotations, the tag name for tags and the
// target UUID for dependencies.
type Attribute struct {
	Class    AttributeClass
	Property string
	Key      string
}

// Classify maps a property name to exactly one attribute class
func Classify(property string) Attribute {
	switch {
	case strings.HasPrefix(property, AnnotationPrefix):
		return Attribute{Class: AttrAnnotation, Property: property, Key: property[len(AnnotationPrefix):]}
	case strings.HasPrefix(property, TagPrefix):
		return Attribute{Class: AttrTag, Property: property, Key: property[len(TagPrefix):]}
	case strings.HasPrefix(property, DependencyPrefix):
		return Attribute{Class: AttrDependency, Property: property, Key: property[len(DependencyPrefix):]}
	default:
		return Attribute{Class: AttrScalar, Property: property, Key: property}
	}
}

// TagProperty returns the synthetic property name for a tag
func TagProperty(tag string) string {
	return TagPrefix + tag
}

// AnnotationProperty returns the synthetic property name for an annotation
// entered at the given epoch second. Two annotations entered in the same
// second share one key, so the later one overwrites the earlier.
func AnnotationProperty(entry int64) string {
	return AnnotationPrefix + formatEpoch(entry)
}

// DependencyProperty returns the synthetic property name for a dependency
func DependencyProperty(target string) string {
	return DependencyPrefix + target
}

// ignoredProperty reports whether a property never produces journal text
func ignoredProperty(property string) bool {
	return property == PropModified || property == PropDepends || property == PropTags
}

// Capitalize upper-cases the first byte of s
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
