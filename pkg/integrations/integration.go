package integrations

import (
	"go.uber.org/zap"

	"droscher.com/RecipeBook/pkg/integrations/schemaorg"
	"droscher.com/RecipeBook/pkg/model"
)

type Integration interface {
	FindRecipe(pageURL string) (*model.Recipe, error)
}

func GetIntegration(name string, logger *zap.Logger) Integration {
	if name == schemaorg.IntegrationName {
		return schemaorg.NewSchemaOrgIntegration(logger)
	}

	return nil
}
