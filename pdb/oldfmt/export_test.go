package oldfmt

// Exported for testing

var Cols = cols
var RecordName = recordName
var MinAtomLen = minAtomLen

// Col makes a column range, counting from 1, both ends included.
func Col(start, end int) col { return col{start, end} }

// ColTable gives the column ranges by name, so each boundary can be
// checked from outside.
var ColTable = map[string]col{
	"recName":    recNameCol,
	"hdrClass":   hdrClassCol,
	"hdrDate":    hdrDateCol,
	"hdrID":      hdrIDCol,
	"titleText":  titleTextCol,
	"sourceText": sourceTextCol,
	"remarkNum":  remarkNumCol,
	"remarkText": remarkTextCol,
	"mdlSerial":  mdlSerialCol,
	"hlxID":      hlxIDCol,
	"hlxChain":   hlxChainCol,
	"hlxStart":   hlxStartCol,
	"hlxEnd":     hlxEndCol,
	"hlxClass":   hlxClassCol,
	"shtStrand":  shtStrandCol,
	"shtID":      shtIDCol,
	"shtChain":   shtChainCol,
	"shtStart":   shtStartCol,
	"shtEnd":     shtEndCol,
	"shtSense":   shtSenseCol,
	"atSerial":   atSerialCol,
	"atName":     atNameCol,
	"atAltLoc":   atAltLocCol,
	"atResName":  atResNameCol,
	"atChain":    atChainCol,
	"atResSeq":   atResSeqCol,
	"atICode":    atICodeCol,
	"atX":        atXCol,
	"atY":        atYCol,
	"atZ":        atZCol,
	"atOcc":      atOccCol,
	"atBfac":     atBfacCol,
	"atElem":     atElemCol,
	"atCharge":   atChargeCol,
}

func (c col) Start() int { return c.start }
func (c col) End() int   { return c.end }
