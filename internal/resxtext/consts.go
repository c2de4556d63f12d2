package resxtext

const (
	// DataElement is the entry element of a resource table.
	DataElement = "data"

	// ValueElement holds an entry's text payload inside a data element.
	ValueElement = "value"

	// NameAttr carries the entry key on a data element.
	NameAttr = "name"

	// SpacePreserveAttr is emitted on synthesized entries, matching the
	// attribute Visual Studio writes on every data element.
	SpacePreserveAttr = `xml:space="preserve"`
)
