package pattern

// Validate checks that every required field is present in the table,
// matching names exactly after whitespace trimming. It returns a
// *MissingFieldsError listing everything absent, or nil.
func Validate(t *Table, fields ...string) error {
	var missing []string
	for _, f := range fields {
		if t.FieldIndex(f) < 0 {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return &MissingFieldsError{Table: t.Name, Fields: missing}
	}
	return nil
}
