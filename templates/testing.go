package templates

// NewLibraryForTest builds a Library directly from an in-memory type ->
// templates map, bypassing the on-disk loader. Exported for other
// packages' tests (scoring, classify) that need a Library fixture
// without writing index.json/gob files to a temp directory.
func NewLibraryForTest(byType map[string][]*Template) *Library {
	return newLibrary(byType)
}
