package logging

func withCategories(keys map[ExtraKey]any, cat Category, sub SubCategory) map[ExtraKey]any {
	if keys == nil {
		keys = make(map[ExtraKey]any, 2)
	}
	keys[CategoryKey] = string(cat)
	keys[SubCategoryKey] = string(sub)
	return keys
}

func logParamsToZapParams(keys map[ExtraKey]any) []any {
	params := make([]any, 0, len(keys)*2)

	for k, v := range keys {
		params = append(params, string(k))
		params = append(params, v)
	}

	return params
}

func logParamsToZeroParams(keys map[ExtraKey]any) map[string]any {
	params := map[string]any{}

	for k, v := range keys {
		params[string(k)] = v
	}

	return params
}
