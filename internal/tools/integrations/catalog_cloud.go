package integrations

var cloudSecurity = []Integration{
	{
		Name:        "Wiz",
		Profile:     "wiz",
		Description: "Wiz cloud security",
		Actions: []Action{
			ping("Wiz"),
			{
				Name:        "Get Findings",
				Description: "List Wiz issues, optionally filtered by status and severity.",
				Params: []Param{
					{Name: "Status", Arg: "status", Kind: String, Description: "Comma-separated statuses: OPEN, IN_PROGRESS, RESOLVED, REJECTED"},
					{Name: "Severity", Arg: "severity", Kind: String, Description: "Comma-separated severities: CRITICAL, HIGH, MEDIUM, LOW, INFORMATIONAL"},
					{Name: "Max Records To Return", Arg: "max_records_to_return", Kind: String, Default: "50", Description: "Maximum findings to return"},
				},
			},
			{
				Name:        "List Policies",
				Description: "List Wiz cloud configuration and control policies.",
				Params: []Param{
					{Name: "Policy Type", Arg: "policy_type", Kind: Enum, Default: "All", Choices: []string{"All", "Cloud Configuration", "Control", "Host Configuration"}, Description: "Type of policies to list"},
					{Name: "Enabled Only", Arg: "enabled_only", Kind: Bool, Default: "false", Description: "Return only enabled policies"},
					{Name: "Max Records To Return", Arg: "max_records_to_return", Kind: String, Default: "50", Description: "Maximum policies to return"},
				},
			},
			{
				Name:        "Get Issue Details",
				Description: "Fetch a Wiz issue.",
				Params: []Param{
					{Name: "Issue ID", Arg: "issue_id", Kind: String, Required: true, Description: "Wiz issue ID"},
				},
			},
			{
				Name:        "Add Comment To Issue",
				Description: "Comment on a Wiz issue.",
				Params: []Param{
					{Name: "Issue ID", Arg: "issue_id", Kind: String, Required: true, Description: "Wiz issue ID"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Comment text"},
				},
			},
		},
	},
}
