package arraylist

// Named instantiations for the common element types.
type (
	IntList     = List[int]
	Int64List   = List[int64]
	Float64List = List[float64]
	StringList  = List[string]
	BoolList    = List[bool]
	ByteList    = List[byte]
	RuneList    = List[rune]
)
