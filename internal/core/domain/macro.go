package domain

// MacroKind groups troff macros by what they do to a page.
type MacroKind int

const (
	KindUnknown MacroKind = iota
	KindComment
	KindFont
	KindStructure
	KindParagraph
	KindHyperlink
	KindSynopsis
)

// String returns a human-readable name for the kind.
func (k MacroKind) String() string {
	switch k {
	case KindComment:
		return "comment"
	case KindFont:
		return "font"
	case KindStructure:
		return "structure"
	case KindParagraph:
		return "paragraph"
	case KindHyperlink:
		return "hyperlink"
	case KindSynopsis:
		return "synopsis"
	}
	return "unknown"
}

// LineType identifies one specific macro.
type LineType int

const (
	LineUnknown LineType = iota
	LineComment
	LineB
	LineBI
	LineBR
	LineI
	LineIB
	LineIR
	LineRB
	LineRI
	LineSB
	LineSM
	LineEE
	LineEX
	LineRE
	LineRS
	LineSH
	LineSS
	LineTH
	LineIP
	LineLP
	LineP
	LinePP
	LineTP
	LineTQ
	LineME
	LineMT
	LineUE
	LineUR
	LineOP
	LineSY
	LineYS
)

// Macro describes a single troff request: the specific macro it is, the
// symbol that follows the leading period, and the kind of work it does.
type Macro struct {
	Line   LineType
	Symbol string
	Kind   MacroKind
}

// Macros returns the static table of recognised troff requests. All of
// them start with a period followed by one or two ASCII characters.
func Macros() []Macro {
	return []Macro{
		{Line: LineUnknown, Symbol: "", Kind: KindUnknown},
		{Line: LineComment, Symbol: `\"`, Kind: KindComment},

		{Line: LineB, Symbol: "B", Kind: KindFont},
		{Line: LineBI, Symbol: "BI", Kind: KindFont},
		{Line: LineBR, Symbol: "BR", Kind: KindFont},
		{Line: LineI, Symbol: "I", Kind: KindFont},
		{Line: LineIB, Symbol: "IB", Kind: KindFont},
		{Line: LineIR, Symbol: "IR", Kind: KindFont},
		{Line: LineRB, Symbol: "RB", Kind: KindFont},
		{Line: LineRI, Symbol: "RI", Kind: KindFont},
		{Line: LineSB, Symbol: "SB", Kind: KindFont},
		{Line: LineSM, Symbol: "SM", Kind: KindFont},

		{Line: LineEE, Symbol: "EE", Kind: KindStructure},
		{Line: LineEX, Symbol: "EX", Kind: KindStructure},
		{Line: LineRE, Symbol: "RE", Kind: KindStructure},
		{Line: LineRS, Symbol: "RS", Kind: KindStructure},
		{Line: LineSH, Symbol: "SH", Kind: KindStructure},
		{Line: LineSS, Symbol: "SS", Kind: KindStructure},
		{Line: LineTH, Symbol: "TH", Kind: KindStructure},

		{Line: LineIP, Symbol: "IP", Kind: KindParagraph},
		{Line: LineLP, Symbol: "LP", Kind: KindParagraph},
		{Line: LineP, Symbol: "P", Kind: KindParagraph},
		{Line: LinePP, Symbol: "PP", Kind: KindParagraph},
		{Line: LineTP, Symbol: "TP", Kind: KindParagraph},
		{Line: LineTQ, Symbol: "TQ", Kind: KindParagraph},

		{Line: LineME, Symbol: "ME", Kind: KindHyperlink},
		{Line: LineMT, Symbol: "MT", Kind: KindHyperlink},
		{Line: LineUE, Symbol: "UE", Kind: KindHyperlink},
		{Line: LineUR, Symbol: "UR", Kind: KindHyperlink},

		{Line: LineOP, Symbol: "OP", Kind: KindSynopsis},
		{Line: LineSY, Symbol: "SY", Kind: KindSynopsis},
		{Line: LineYS, Symbol: "YS", Kind: KindSynopsis},
	}
}
