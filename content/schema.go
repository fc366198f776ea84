package content

import "github.com/invopop/jsonschema"

// Schema describes the content document for editor validation
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.Reflect(new(Document))
	schema.Title = "Arena Ability Content"
	schema.Description = "Validates designer-authored ability data, loadouts and arena layout"
	return schema
}
