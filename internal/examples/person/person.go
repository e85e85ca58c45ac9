package person

import "sync"

//go:generate fieldmeta -debug
//go:fieldmeta -type Person members -export -name-tag json

type Person struct {
	Age    int      `json:"age"`
	name   string   `json:"name"`
	total  int      `json:"total"`
	tags   []string `json:"tags,omitempty"`
	lock   sync.Mutex
	Scores []int `json:"-"`
}

func (p *Person) Name() *string        { return &p.name }
func (p *Person) SetName(name *string) { p.name = *name }
func (p *Person) Total() int           { return p.total }
func (p *Person) SetTotal(total int)   { p.total = total }
func (p *Person) TagsRef() *[]string   { return &p.tags }
