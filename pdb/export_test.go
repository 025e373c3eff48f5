package pdb

// Exported for testing

var FmtFromName = fmtFromName
var FmtFromText = fmtFromText

// SetSiteBase points every site at base and returns a function to put
// them back.
func SetSiteBase(base string) func() {
	saved := append([]site(nil), sites...)
	for i := range sites {
		sites[i].urlBase = base
	}
	return func() { copy(sites, saved) }
}
