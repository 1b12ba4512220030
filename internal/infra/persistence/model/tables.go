package model

// Tables lists every model owned by the gateway, in creation order.
func Tables() []any {
	return []any{
		&ProviderCredentialModel{},
		&BeanAnalysisModel{},
		&UsageCounterModel{},
	}
}
