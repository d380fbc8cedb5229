/*
Package tmpl implements the small positional template language used for the
comparison and instantiation documents.

A template is literal text with replacement fields:

	{0}            the value of slot 0
	{}             the next slot (automatic numbering)
	{{  }}         literal braces
	=(=  =)=       literal braces, for documents that already use {{ }}

A field holding a sequence value (from a variadic slot) takes a repeat
spec after a colon:

	{2:|, |Finder::|<G>}

The first character of the spec is the delimiter. The text up to the next
delimiter is the glue, the rest is the body. The body is emitted once per
element, joined by the glue, with every delimiter inside it replaced by the
element. The example expands ["A", "B"] to "Finder::A<G>, Finder::B<G>".

Templates are parsed once into a tree of Text and Field nodes and can then
be rendered for any number of tuples.
*/
package tmpl
