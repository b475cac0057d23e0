package harness

func lenIf(data []*string) int {
	result := 0
	for _, s := range data {
		if s != nil {
			result += len(*s)
		}
	}

	return result
}

func lenSwitch(data []*string) int {
	result := 0
	for _, s := range data {
		switch {
		case s == nil:
		default:
			result += len(*s)
		}
	}

	return result
}

func lenOr(s *string, def int) int {
	if s == nil {
		return def
	}

	return len(*s)
}

func lenMapOr(data []*string) int {
	result := 0
	for _, s := range data {
		result += lenOr(s, 0)
	}

	return result
}

func registerOptionCases(reg *Registry, cfg SuiteConfig) error {
	optionCase := func(name string, body func([]*string) int) Case {
		return Case{
			Name:  name,
			Group: GroupOption,
			Setup: func() (Prepared, error) {
				data := cfg.generator(1, false).Strings()

				return Prepared{
					Body:     func() int { return body(data) },
					Want:     lenIf(data),
					Elements: len(data),
				}, nil
			},
		}
	}

	return registerAll(reg,
		optionCase("option_if", lenIf),
		optionCase("option_switch", lenSwitch),
		optionCase("option_map_or", lenMapOr),
	)
}
