package integrations

var firewalls = []Integration{
	{
		Name:        "PaloAltoNGFW",
		Profile:     "palo_alto_ngfw",
		Description: "Palo Alto Networks next-generation firewall",
		Actions: []Action{
			ping("Palo Alto NGFW"),
			{
				Name:        "Block IPs In Policy",
				Description: "Add IP entities to the source or destination of a security policy.",
				Params: []Param{
					{Name: "Device Name", Arg: "device_name", Kind: String, Required: true, Description: "Firewall device name"},
					{Name: "Vsys Name", Arg: "vsys_name", Kind: String, Required: true, Description: "Virtual system name"},
					{Name: "Policy Name", Arg: "policy_name", Kind: String, Required: true, Description: "Security policy to update"},
					{Name: "Target", Arg: "target", Kind: Enum, Default: "source", Choices: []string{"source", "destination"}, Description: "Side of the policy to update"},
				},
			},
			{
				Name:        "Unblock IPs In Policy",
				Description: "Remove IP entities from a security policy.",
				Params: []Param{
					{Name: "Device Name", Arg: "device_name", Kind: String, Required: true, Description: "Firewall device name"},
					{Name: "Vsys Name", Arg: "vsys_name", Kind: String, Required: true, Description: "Virtual system name"},
					{Name: "Policy Name", Arg: "policy_name", Kind: String, Required: true, Description: "Security policy to update"},
					{Name: "Target", Arg: "target", Kind: Enum, Default: "source", Choices: []string{"source", "destination"}, Description: "Side of the policy to update"},
				},
			},
			{
				Name:        "Add Ips to group",
				Description: "Add IP entities to an address group.",
				Params: []Param{
					{Name: "Address Group Name", Arg: "address_group_name", Kind: String, Required: true, Description: "Address group to update"},
					{Name: "Device Name", Arg: "device_name", Kind: String, Description: "Firewall device name"},
					{Name: "Vsys Name", Arg: "vsys_name", Kind: String, Description: "Virtual system name"},
				},
			},
			{
				Name:        "Commit Changes",
				Description: "Commit pending configuration changes.",
				Params: []Param{
					{Name: "Only My Changes", Arg: "only_my_changes", Kind: Bool, Default: "false", Description: "Commit only changes made by the integration user"},
				},
			},
		},
	},
	{
		Name:        "FortiGate",
		Profile:     "fortigate",
		Description: "Fortinet FortiGate firewall",
		Actions: []Action{
			ping("FortiGate"),
			{
				Name:        "Add Entities To Address Group",
				Description: "Create address objects for entities and add them to a group.",
				Params: []Param{
					{Name: "Address Group Name", Arg: "address_group_name", Kind: String, Required: true, Description: "Address group to update"},
				},
			},
			{
				Name:        "Remove Entities From Address Group",
				Description: "Remove entity address objects from a group.",
				Params: []Param{
					{Name: "Address Group Name", Arg: "address_group_name", Kind: String, Required: true, Description: "Address group to update"},
				},
			},
			{
				Name:        "Update Firewall Policy",
				Description: "Add or remove entities on a firewall policy.",
				Params: []Param{
					{Name: "Policy Name", Arg: "policy_name", Kind: String, Required: true, Description: "Firewall policy to update"},
					{Name: "Location", Arg: "location", Kind: Enum, Default: "Source", Choices: []string{"Source", "Destination"}, Description: "Side of the policy to update"},
					{Name: "Action", Arg: "action", Kind: Enum, Default: "Add", Choices: []string{"Add", "Remove"}, Description: "Add or remove the entities"},
				},
			},
			{
				Name:        "List Policies",
				Description: "List firewall policies.",
				Params: []Param{
					{Name: "Filter Key", Arg: "filter_key", Kind: Enum, Default: "Select One", Choices: []string{"Select One", "Name", "Source Address", "Destination Address"}, Description: "Field to filter on"},
					{Name: "Filter Logic", Arg: "filter_logic", Kind: Enum, Default: "Not Specified", Choices: []string{"Not Specified", "Equal", "Contains"}, Description: "Filter operator"},
					{Name: "Filter Value", Arg: "filter_value", Kind: String, Description: "Value to filter by"},
					{Name: "Max Records To Return", Arg: "max_records_to_return", Kind: String, Default: "50", Description: "Maximum policies to return"},
				},
			},
		},
	},
}
