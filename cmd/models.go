package cmd

type ItemInfo struct {
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Attributes int      `json:"attributes,omitempty"`
	Options    []string `json:"options,omitempty"`
	Members    []string `json:"members,omitempty"`
}

type AttrInfo struct {
	ItemName  string `json:"typeName,omitempty"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Nullable  bool   `json:"nullable"`
	Directive string `json:"directive,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

type ValueInfo struct {
	EnumName string `json:"enumName,omitempty"`
	Name     string `json:"name"`
}

type MemberInfo struct {
	UnionName string `json:"unionName,omitempty"`
	Name      string `json:"name"`
}

type ReferenceInfo struct {
	Location string `json:"location"`
	Kind     string `json:"kind"`
	Type     string `json:"type"`
}

type PathInfo struct {
	Path string `json:"path"`
}

type SegmentInfo struct {
	Name    string `json:"name"`
	Lines   int    `json:"lines"`
	Present bool   `json:"present"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type ValidationError struct {
	Message   string     `json:"message"`
	Rule      string     `json:"rule,omitempty"`
	Locations []Location `json:"locations,omitempty"`
}

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}
