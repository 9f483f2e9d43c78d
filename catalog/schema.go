package catalog

import (
	"github.com/invopop/jsonschema"
)

// Schema reflects the catalog document into a JSON schema for editor validation
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
		ExpandedStruct:             true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "Ordnance Projectile Catalog"
	schema.Description = "Projectile types and terrain behaviour consumed by the ballistics engine."
	return schema
}
