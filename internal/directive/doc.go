// internal/directive/doc.go

/*
Package directive reads the preprocessor-style declaration stream that drives
the generator.

Every non-blank input line must have the form

	#define NAME [VALUE]

and is classified by its name prefix:

	CHOICES_<list>          a choice list, VALUE is comma-separated labels
	LIST_CHOICES_<request>  a generation request, VALUE is comma-separated
	                        list references, a trailing "..." marks a
	                        variadic slot

Any other #define is kept as an OtherDeclaration and ignored by the
pipeline. Lines that are not #define directives are fatal.
*/
package directive
