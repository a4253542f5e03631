package wizard

// Missing lists the required fields of step that are still empty.
// Presence is the only check: no format validation happens here.
func Missing(step StepDefinition, s *Store) []FieldKey {
	var missing []FieldKey
	for _, key := range step.RequiredFields {
		if !s.Present(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// Passes reports whether every required field of step is filled in.
func Passes(step StepDefinition, s *Store) bool {
	return len(Missing(step, s)) == 0
}

// MissingAll collects the empty required fields of every step.
func MissingAll(steps []StepDefinition, s *Store) []FieldKey {
	var missing []FieldKey
	for _, step := range steps {
		missing = append(missing, Missing(step, s)...)
	}
	return missing
}
