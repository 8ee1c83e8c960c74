// Package tessera is the front-end of a compile-time HTML/text template
// compiler. It turns template source into an item tree that a code
// generator lowers into render code, and defines the contract that
// generated code renders through.
//
// Template syntax:
//
//	Hello, {{ user.name }}!                     expression
//	<# let total = a + b; #>                    plain statement
//	<#if admin#>...<#else>...<#end>             keyword statements with bodies
//	<ui::Card title="Hi" open={{ x }} wide/>     child template
//	<!-- kept verbatim -->                      comment
//	%{{ and %<#                                 escaped delimiters
//
// # Basic Usage
//
//	c := tessera.MustNew()
//	tmpl, err := c.Parse(`<Card title="Hi">{{ body }}</Card>`)
//	if err != nil {
//	    // err carries line/column metadata
//	}
//	for _, item := range tmpl.Items() {
//	    fmt.Println(item)
//	}
//
// # Rendering
//
// Generated code implements Component and writes through a RenderContext,
// which escapes expression results for the template's content type:
//
//	page := tessera.ComponentFunc(func(rc *tessera.RenderContext) error {
//	    if err := rc.RenderLiteral("<p>"); err != nil {
//	        return err
//	    }
//	    if err := rc.RenderExpression(name); err != nil {
//	        return err
//	    }
//	    return rc.RenderLiteral("</p>")
//	})
//	html, err := tessera.RenderToString(page, tessera.ContentTypeHTML)
//
// Values flow from parent to child templates through Params:
//
//	tessera.Provide(page, Theme{Dark: true})
//	theme, ok := tessera.Param[Theme](rc.Params())
//
// # Configuration
//
//	c, _ := tessera.New(
//	    tessera.WithDelimiters("${", "}", "", ""),
//	    tessera.WithMaxDepth(50),
//	    tessera.WithLogger(logger),
//	)
package tessera
