package atlex_test

import (
	"fmt"

	"github.com/kbaskett248/atlex/atlang"
	"github.com/kbaskett248/atlex/lexer"
	"github.com/kbaskett248/atlex/ruledef"
	"github.com/kbaskett248/atlex/source"
)

func Example() {
	input := ":Report Type=1\n" +
		"{A,B}\n"

	src := source.New("report.at", []byte(input))
	s, e := atlang.NewStream(src, atlang.ModeMain)
	if e != nil {
		fmt.Println(e)
		return
	}

	for t := s.Next(); t != nil; t = s.Next() {
		fmt.Printf("%d:%d %s %q\n", t.Line(), t.Col(), t.Rule(), t.Text())
	}
	// Output:
	// 1:1 keyword ":Report"
	// 1:9 name "Type"
	// 1:13 equal "="
	// 1:14 number "1"
	// 1:15 value_end "\n"
	// 2:1 list_open "{"
	// 2:2 name "A"
	// 2:3 member_sep ","
	// 2:4 name "B"
	// 2:5 list_close "}"
	// 3:1 -end-of-file- ""
}

func Example_customGrammar() {
	grammar := `
m main .
r word [a-z]+
r space [ \t]+
l open <
m tag .
r word [A-Z]+
l close >
x space .
`
	catalog, e := ruledef.LoadString("tags.rules", grammar)
	if e != nil {
		fmt.Println(e)
		return
	}

	src := source.New("input", []byte("hello <TAG> world"))
	s, e := lexer.New(catalog, "main", src)
	if e != nil {
		fmt.Println(e)
		return
	}

	for t := s.Next(); t != nil; t = s.Next() {
		fmt.Printf("%s %q\n", t.Rule(), t.Text())
		switch t.Rule() {
		case "open":
			s.Push("tag")
		case "close":
			s.Pop()
		}
	}
	// Output:
	// word "hello"
	// open "<"
	// word "TAG"
	// close ">"
	// word "world"
	// -end-of-file- ""
}
