package render

import (
	"fmt"
	"strings"

	"geometry/internal/geometry/drawable"
)

// DefaultRate is the frame duration of a video in milliseconds.
const DefaultRate = 18.451

// ============================================================
// Video
// ============================================================

// SVGVideo renders frames as one looping SVG animation. Each frame is a
// group shown for rate milliseconds, chained to the previous one by SMIL
// set elements.
func SVGVideo(vp Viewport, frames [][]*drawable.Drawable, rate float64) string {
	doc := NewSVG(vp)
	var builder strings.Builder
	builder.WriteString(doc.header())
	builder.WriteString("\n")
	builder.WriteString(doc.group())
	builder.WriteString("\n")

	for n, ds := range frames {
		r := NewSVG(vp)
		drawable.DrawAll(r, ds)

		begin := "0ms;finish.begin"
		if n > 0 {
			begin = fmt.Sprintf("hide%d.begin", n-1)
			builder.WriteString(`  <g opacity="0">`)
		} else {
			builder.WriteString(`  <g>`)
		}
		builder.WriteString("\n")
		fmt.Fprintf(&builder, `    <set id="show%d" attributeName="opacity" to="1" begin="%s" dur="1ms" fill="freeze" />`+"\n",
			n, begin)
		fmt.Fprintf(&builder, `    <set id="hide%d" attributeName="opacity" to="0" begin="show%d.begin + %sms" dur="1ms" fill="freeze" />`+"\n",
			n, n, formatFloat(rate))
		for _, elem := range r.elements {
			builder.WriteString("    ")
			builder.WriteString(elem)
			builder.WriteString("\n")
		}
		builder.WriteString("  </g>\n")
	}
	if len(frames) > 0 {
		fmt.Fprintf(&builder, `  <set id="finish" attributeName="opacity" to="1" begin="hide%d.begin" dur="1ms" />`+"\n",
			len(frames)-1)
	}
	builder.WriteString("</g>\n</svg>")
	return builder.String()
}

// HTMLVideo renders frames as a canvas page cycling through them every rate
// milliseconds. Space or a click pauses.
func HTMLVideo(vp Viewport, frames [][]*drawable.Drawable, rate float64) string {
	var script strings.Builder
	script.WriteString("var play=true;")
	script.WriteString("document.onkeyup=function(e){if(e.keyCode==32)play=!play;};")
	script.WriteString("document.onclick=function(){play=!play;};")
	script.WriteString("var time=0;\nsetInterval(function(){\nif(!play)return;\n")
	fmt.Fprintf(&script, "ctx.save();ctx.setTransform(1,0,0,1,0,0);ctx.clearRect(0,0,%s,%s);ctx.restore();\n",
		formatFloat(vp.Width), formatFloat(vp.Height))
	script.WriteString("switch(time){\n")
	for n, ds := range frames {
		r := NewHTML(vp)
		drawable.DrawAll(r, ds)
		fmt.Fprintf(&script, "case %d:\n", n)
		script.WriteString(r.script.String())
		script.WriteString("break;\n")
	}
	fmt.Fprintf(&script, "}\ntime=(time+1)%%%d;\n},%s);\n", max(len(frames), 1), formatFloat(rate))
	return NewHTML(vp).document(script.String())
}
