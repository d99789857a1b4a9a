// Obligatory // comment

/*
Package nswitch parses command lines against a declared set of options.

Start with NewParser().  Declare options with the typed helpers (Int, Bool,
String, GUID, Path, InputFile, OutputFile) or the generic functions (Enum,
List, Switch, Command).  Each helper returns the option; read its value
after calling Parse().

	p := nswitch.NewParser("fetch", "downloads things")
	count := p.Int(nswitch.MustParseMeta("--count -n,default=1,desc=how many"))
	ids := nswitch.List[int](p, nil, nswitch.Meta{Name: "--ids"})
	err := p.Parse(os.Args[1:]...)

Metadata can be given as a Meta struct or as a compact declaration parsed
by ParseMeta.  The general form is the same as a struct tag value:

	"name shortname,key=value,flag,!flag"

The keys are:

	required: the option must be present (unless help is requested)
	default: initial raw value
	enum: the enum constant for a switch or command
	index: display order in the usage text
	desc: description for the usage text

Values that come after a switch are consumed as its argument unless they
are themselves a switch.  Boolean options can be given alone ("-v") or with
a value ("-v false").  Lists are comma separated ("--ids 1,2,3").

Switch groups are sets of switches that share an enum type.  Only one
switch in a group may be given.  A command is a switch that ends parsing:
everything after it is left in Remaining() for another Parser, usually
invoked from an OnComplete callback.

The implicit option "--help" (also "/?") is always present.  When it
appears anywhere on the command line, required options are not checked.

Errors caused by the command line satisfy IsSyntaxError and should be
followed by showing Usage().  Errors caused by the declarations satisfy
IsDeclarationError.

A Parser can be used again: each Parse starts from the declared defaults.

Debug tracing is compiled in with the build tag debugNswitch.

*/
package nswitch
