package valueobject

// ClassDescriptor accumulates the binding surface of one class recovered from
// the header. It is created the first time its name is seen via the opaque
// type-alias declaration and never deleted; member-bearing declarations are
// appended or assigned into it afterwards.
//
// Constructor and Destructor hold at most one entry each; when the producer
// emits duplicates, the last declaration seen wins. The member lists preserve
// declaration-encounter order.
type ClassDescriptor struct {
	// Name is the logical class name recovered from the identifier grammar.
	Name string `json:"name"                    yaml:"name"`
	// CName is the linkage-qualified C++ name of the opaque class handle.
	CName string `json:"c_name"                  yaml:"c_name"`
	// Documentation is the doc comment attached to the type-alias declaration.
	Documentation string          `json:"documentation,omitempty" yaml:"documentation,omitempty"`
	Constructor   *Constructor    `json:"constructor,omitempty"   yaml:"constructor,omitempty"`
	Destructor    *Destructor     `json:"destructor,omitempty"    yaml:"destructor,omitempty"`
	Statics       []StaticFunction `json:"statics"                 yaml:"statics"`
	Methods       []Method         `json:"methods"                 yaml:"methods"`
	Getters       []Getter         `json:"getters"                 yaml:"getters"`
	Setters       []Setter         `json:"setters"                 yaml:"setters"`
}

// NewClassDescriptor creates an empty class descriptor carrying the identity
// fields read from the introducing type-alias declaration.
func NewClassDescriptor(name, cName, documentation string) *ClassDescriptor {
	return &ClassDescriptor{
		Name:          name,
		CName:         cName,
		Documentation: documentation,
		Statics:       make([]StaticFunction, 0),
		Methods:       make([]Method, 0),
		Getters:       make([]Getter, 0),
		Setters:       make([]Setter, 0),
	}
}

// SetConstructor assigns the constructor slot. Last write wins.
func (c *ClassDescriptor) SetConstructor(ctor Constructor) {
	c.Constructor = &ctor
}

// SetDestructor assigns the destructor slot. Last write wins.
func (c *ClassDescriptor) SetDestructor(dtor Destructor) {
	c.Destructor = &dtor
}

// AddStatic appends a static function in encounter order.
func (c *ClassDescriptor) AddStatic(s StaticFunction) {
	c.Statics = append(c.Statics, s)
}

// AddMethod appends a method in encounter order.
func (c *ClassDescriptor) AddMethod(m Method) {
	c.Methods = append(c.Methods, m)
}

// AddGetter appends a getter in encounter order.
func (c *ClassDescriptor) AddGetter(g Getter) {
	c.Getters = append(c.Getters, g)
}

// AddSetter appends a setter in encounter order.
func (c *ClassDescriptor) AddSetter(s Setter) {
	c.Setters = append(c.Setters, s)
}

// MemberCount returns the total number of recorded members including the
// constructor and destructor slots.
func (c *ClassDescriptor) MemberCount() int {
	count := len(c.Statics) + len(c.Methods) + len(c.Getters) + len(c.Setters)
	if c.Constructor != nil {
		count++
	}
	if c.Destructor != nil {
		count++
	}
	return count
}
