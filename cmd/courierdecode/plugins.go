package main

// Blank imports trigger each concrete plugin's init() registration
// against the shared registry in internal/plugin.
import (
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/cef"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/fortinet/fortigate"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/jsonplugin"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/kv"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/leef1"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/leef2"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/paloalto/ngfw"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/textheuristic"
	_ "github.com/ziggiz-courier/courier-decode/internal/plugins/xmlplugin"
)
