package ngfw

// PANTypeFieldMap maps a Palo Alto NGFW CSV log TYPE (upper-cased) to the
// ordered field names for that log's CSV columns, starting at column 0.
// Column 3 (zero-based) is always "type" and is how the dispatching
// plugin recognises which table to use.
//
// PAN-OS does not ship a machine-readable copy of this table in the
// retrieved source pack (the defining const.py/field_maps.py that
// fortinet/fortigate's sibling plugin imports from is absent from the
// pack entirely - see DESIGN.md). This table is hand-authored from the
// publicly documented PAN-OS syslog field descriptions, trimmed to the
// columns this decoder actually classifies on.
var PANTypeFieldMap = map[string][]string{
	"TRAFFIC": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "source_address", "destination_address",
		"nat_source_ip", "nat_destination_ip", "rule_name", "source_zone",
		"destination_zone", "inbound_interface", "outbound_interface", "log_action",
		"session_id", "repeat_count", "source_port", "destination_port",
		"nat_source_port", "nat_destination_port", "flags", "ip_protocol",
		"action", "bytes", "bytes_sent", "bytes_received", "packets",
		"start_time", "elapsed_time", "category", "sequence_number",
		"action_source", "source_location", "destination_location",
	},
	"THREAT": {
		"future_use", "receive_time", "serial_number", "type", "threat_content_type",
		"future_use2", "generated_time", "source_address", "destination_address",
		"nat_source_ip", "nat_destination_ip", "rule_name", "source_user",
		"destination_user", "application", "virtual_system", "source_zone",
		"destination_zone", "inbound_interface", "outbound_interface", "log_action",
		"session_id", "repeat_count", "source_port", "destination_port",
		"nat_source_port", "nat_destination_port", "flags", "ip_protocol",
		"action", "url_filename", "threat_id", "category", "severity",
		"direction", "sequence_number", "action_flags",
	},
	"SYSTEM": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"object_name", "receive_time2", "module", "severity_count",
		"repeat_count", "description", "severity", "event_id", "message",
	},
	"CONFIG": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "administrator", "client_type",
		"result", "configuration_path", "sequence_number", "before_change_detail",
		"path", "value", "attribute", "new_value",
	},
	"HIPMATCH": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "source_user", "virtual_system",
		"machine_name", "os", "source_address", "hip", "repeat_count",
		"hip_type", "sequence_number",
	},
	"GLOBALPROTECT": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "event_id", "stage", "auth_method",
		"tunnel_type", "source_user", "source_region", "machine_name",
		"public_ip", "private_ip", "host_id", "sequence_number",
	},
	"USERID": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "virtual_system", "source_ip",
		"user", "data_source_name", "event_id", "repeat_count", "timeout",
		"data_source", "data_source_type", "sequence_number",
	},
	"DECRYPTION": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "source_address", "destination_address",
		"nat_source_ip", "nat_destination_ip", "rule_name", "source_zone",
		"destination_zone", "source_port", "destination_port", "tls_version",
		"policy_name", "error_index", "repeat_count", "sequence_number",
	},
	"CORRELATION": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "object_name", "object_id",
		"category", "severity", "match_time", "repeat_count", "description",
		"sequence_number",
	},
	"AUTHENTICATION": {
		"future_use", "receive_time", "serial_number", "type", "subtype",
		"future_use2", "generated_time", "source_user", "source_address",
		"server_profile", "auth_policy", "event_type", "repeat_count",
		"client_type", "authentication_id", "sequence_number",
	},
}
