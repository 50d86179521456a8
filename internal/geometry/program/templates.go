package program

// Template is a named starter program.
type Template struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Templates returns the starter programs.
func Templates() []Template {
	return []Template{
		{"Triangle", `A = #(20+60i)
B = #(60-40i)
C = #(-60-40i)
[orange] [fill] t = triangle(A, B, C)
`},
		{"Quadrilateral", `A = #(20+60i)
B = #(60-40i)
C = #(-60-40i)
D = #(-30+40i)
[orange] [fill] polygon(A, B, C, D)
`},
		{"Cyclic quadrilateral", `A = #(20+60i)
B = #(60-40i)
C = #(-60-40i)
c = circumcircle(A, B, C)
D = cproject(#(-45+45i), c)
[orange] [fill] polygon(A, B, C, D)
`},
		{"Animated cyclic quadrilateral", `A = #(20+60i)
B = #(60-40i)
C = #(-60-40i)
c = circumcircle(A, B, C)
D = choose(c, time()/1000)
[orange] [fill] polygon(A, B, C, D)
`},
	}
}
