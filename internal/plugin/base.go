package plugin

import (
	"reflect"
	"strings"

	"github.com/ziggiz-courier/courier-decode/internal/model"
)

// modulePrefix identifies this module's own root package path, used to
// tell first-party plugins (defined under it) from third-party ones for
// the purposes of Identity.
const modulePrefix = "github.com/ziggiz-courier/courier-decode"

// Identity returns a plugin's registry identity: the bare type name for
// plugins defined under this module, or "<topPackage>..<TypeName>" for
// anything else, so a third party's plugin can never collide with a
// first-party plugin of the same short name.
func Identity(p Plugin) string {
	t := reflect.TypeOf(p)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if strings.HasPrefix(t.PkgPath(), modulePrefix) {
		return t.Name()
	}
	segments := strings.Split(t.PkgPath(), "/")
	topPackage := segments[len(segments)-1]
	return topPackage + ".." + t.Name()
}

// ApplyFieldMapping records a plugin's successful parse: EventData becomes
// the plugin's parsed field mapping, and HandlerData[identity] records the
// plugin's classification plus any extra handler metadata. Plugins must
// not touch EventData or HandlerData entries belonging to another
// plugin's identity.
func ApplyFieldMapping(m model.Model, identity string, eventData map[string]any, msgclass string, extra map[string]any) {
	m.SetEventData(eventData)

	entry := make(map[string]any, len(extra)+1)
	for k, v := range extra {
		entry[k] = v
	}
	entry["Msgclass"] = msgclass
	m.SetHandlerData(identity, entry)
}

// SetSourceProducer records the upstream vendor/product a plugin
// recognised under the reserved HandlerData["SourceProducer"] key.
func SetSourceProducer(m model.Model, organization, product, module string) {
	m.SetHandlerData("SourceProducer", model.SourceProducer{
		Organization: organization,
		Product:      product,
		Module:       module,
	})
}
