package integrations

var utilities = []Integration{
	{
		Name:        "Siemplify",
		Profile:     "siemplify",
		Description: "Built-in platform utilities",
		Actions: []Action{
			ping("the platform"),
			{
				Name:        "Add Tags To Case",
				Description: "Tag the case.",
				Params: []Param{
					{Name: "Tag", Arg: "tag", Kind: String, Required: true, Description: "Comma-separated tags"},
				},
			},
			{
				Name:        "Assign Case",
				Description: "Assign the case to a user or role.",
				Params: []Param{
					{Name: "Assigned User", Arg: "assigned_user", Kind: String, Required: true, Description: "User or @role to assign"},
				},
			},
			{
				Name:        "Close Case",
				Description: "Close the case.",
				Params: []Param{
					{Name: "Reason", Arg: "reason", Kind: Enum, Required: true, Choices: []string{"Malicious", "NotMalicious", "Maintenance", "Inconclusive", "Unknown"}, Description: "Close reason"},
					{Name: "Root Cause", Arg: "root_cause", Kind: String, Required: true, Description: "Root cause"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Closing comment"},
				},
			},
			{
				Name:        "Mark As Important",
				Description: "Mark the case as important.",
			},
			{
				Name:        "Add Entity To Custom List",
				Description: "Add the entities to a custom list category.",
				Params: []Param{
					{Name: "Category", Arg: "category", Kind: String, Required: true, Description: "Custom list category"},
				},
			},
			{
				Name:        "Is In Custom List",
				Description: "Check whether the entities are in a custom list category.",
				Params: []Param{
					{Name: "Category", Arg: "category", Kind: String, Required: true, Description: "Custom list category"},
				},
			},
		},
	},
}
