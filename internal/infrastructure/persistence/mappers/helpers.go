package mappers

// stringsOrEmpty keeps JSON array columns from round-tripping as null.
func stringsOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
