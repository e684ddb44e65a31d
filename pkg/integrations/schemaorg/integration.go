package schemaorg

import "go.uber.org/zap"

const IntegrationName = "schema_org"

const userAgent = "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"

type SchemaOrgIntegration struct {
	logger *zap.Logger
}

func NewSchemaOrgIntegration(logger *zap.Logger) *SchemaOrgIntegration {
	return &SchemaOrgIntegration{logger: logger}
}
