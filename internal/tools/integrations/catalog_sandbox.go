package integrations

var sandboxes = []Integration{
	{
		Name:        "JoeSandbox",
		Profile:     "joe_sandbox",
		Description: "Joe Sandbox malware analysis",
		Actions: []Action{
			ping("Joe Sandbox"),
			{
				Name:        "Detonate File",
				Description: "Submit file entities for dynamic analysis and wait for the verdict.",
				Params: []Param{
					{Name: "Comment", Arg: "comment", Kind: String, Description: "Comment stored with the analysis"},
					{Name: "Internet Access", Arg: "internet_access", Kind: Bool, Default: "true", Description: "Allow the sample to reach the internet"},
					{Name: "Report Format", Arg: "report_format", Kind: Enum, Default: "html", Choices: []string{"html", "json", "pdf"}, Description: "Format of the attached report"},
				},
			},
			{
				Name:        "Detonate URL",
				Description: "Submit URL entities for dynamic analysis.",
				Params: []Param{
					{Name: "Comment", Arg: "comment", Kind: String, Description: "Comment stored with the analysis"},
					{Name: "Report Format", Arg: "report_format", Kind: Enum, Default: "html", Choices: []string{"html", "json", "pdf"}, Description: "Format of the attached report"},
				},
			},
			{
				Name:        "Get Analysis Report",
				Description: "Fetch the report of a finished analysis.",
				Params: []Param{
					{Name: "Web ID", Arg: "web_id", Kind: String, Required: true, Description: "Joe Sandbox analysis web ID"},
					{Name: "Report Format", Arg: "report_format", Kind: Enum, Default: "html", Choices: []string{"html", "json", "pdf"}, Description: "Format of the report"},
				},
			},
		},
	},
	{
		Name:        "VMRay",
		Profile:     "vmray",
		Description: "VMRay Analyzer",
		Actions: []Action{
			ping("VMRay"),
			{
				Name:        "Scan Hash",
				Description: "Look up existing VMRay analyses for hash entities.",
				Params: []Param{
					{Name: "Threat Indicator Score Threshold", Arg: "threat_indicator_score_threshold", Kind: String, Default: "3", Description: "Lowest threat indicator score (0-5) to return"},
					{Name: "IOC Type Filter", Arg: "ioc_type_filter", Kind: String, Default: "ips, urls, domains", Description: "Comma-separated IOC types to return"},
					{Name: "IOC Verdict Filter", Arg: "ioc_verdict_filter", Kind: String, Default: "Malicious, Suspicious", Description: "Comma-separated IOC verdicts to return"},
					{Name: "Max IOCs To Return", Arg: "max_iocs_to_return", Kind: String, Default: "10", Description: "Maximum IOCs per type"},
					{Name: "Max Threat Indicators To Return", Arg: "max_threat_indicators_to_return", Kind: String, Default: "10", Description: "Maximum threat indicators"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "false", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Scan URL",
				Description: "Submit URL entities to VMRay for analysis.",
				Params: []Param{
					{Name: "Threat Indicator Score Threshold", Arg: "threat_indicator_score_threshold", Kind: String, Default: "3", Description: "Lowest threat indicator score (0-5) to return"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "false", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Add Tag to Submission",
				Description: "Tag an existing VMRay submission.",
				Params: []Param{
					{Name: "Submission ID", Arg: "submission_id", Kind: String, Required: true, Description: "VMRay submission ID"},
					{Name: "Tag Name", Arg: "tag_name", Kind: String, Required: true, Description: "Tag to add"},
				},
			},
		},
	},
}
