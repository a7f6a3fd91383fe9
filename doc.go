/*
Package gcf writes hierarchical configuration trees in the GCF text format.

A GCF document is a sequence of groups. Each group opens with a [Name] line,
lists its keys one per line, nests its child groups one indentation level
deeper, and closes with a [/Name] line:

	[App]
	    name = "demo"
	    workers = 4
	    [Net]
	        host = "localhost"
	        port = 8080
	    [/Net]
	[/App]

Each nesting level adds four spaces. Keys are indented one level deeper than
the brackets of the group that holds them. String values are wrapped in
double quotes; every other value is written in its natural text form.

The tree is supplied through the Group interface. The root group, whose path
is "/", never appears in the output; the document starts directly with its
children. Package github.com/KimNorgaard/go-gcf/tree provides an in-memory
implementation and builders from Go values, YAML, TOML and JSON.

Writing to a stream:

	var buf bytes.Buffer
	if err := gcf.NewEncoder(&buf).Encode(root); err != nil {
		// handle error
	}

Writing to a file, replacing it atomically:

	if err := gcf.WriteFile("app.gcf", root); err != nil {
		var wte *gcf.WriteTargetError
		if errors.As(err, &wte) {
			// wte.Target names the file, wte.Err holds the cause.
		}
	}

The format is write-only and lossy: comments and any formatting not held by
the tree are not preserved. Embedded double quotes and newlines in string
values are written verbatim and are not escaped.
*/
package gcf
