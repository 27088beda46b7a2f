package validation

var _ Validator = (*StubValidator)(nil)

// StubValidator accepts every payload unless ValidateStructFunc is set.
type StubValidator struct {
	ValidateStructFunc func(s any) map[string]string
}

func (s *StubValidator) ValidateStruct(st any) map[string]string {
	if s.ValidateStructFunc == nil {
		return nil
	}
	return s.ValidateStructFunc(st)
}
