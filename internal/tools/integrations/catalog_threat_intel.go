package integrations

var threatIntel = []Integration{
	{
		Name:        "VirusTotalV3",
		Profile:     "virustotal",
		Description: "VirusTotal v3 API",
		Actions: []Action{
			ping("VirusTotal"),
			{
				Name:        "Enrich Hash",
				Description: "Enrich hash entities with VirusTotal detections and metadata.",
				Params: []Param{
					{Name: "Engine Threshold", Arg: "engine_threshold", Kind: String, Description: "Number of engines that must flag a hash to mark it suspicious"},
					{Name: "Engine Percentage Threshold", Arg: "engine_percentage_threshold", Kind: String, Description: "Percentage of engines that must flag a hash to mark it suspicious"},
					{Name: "Engine Whitelist", Arg: "engine_whitelist", Kind: String, Description: "Comma-separated engines to count"},
					{Name: "Retrieve Comments", Arg: "retrieve_comments", Kind: Bool, Default: "true", Description: "Fetch community comments"},
					{Name: "Retrieve Sigma Analysis", Arg: "retrieve_sigma_analysis", Kind: Bool, Default: "true", Description: "Fetch sigma analysis results"},
					{Name: "Sandbox", Arg: "sandbox", Kind: String, Default: "VirusTotal Jujubox", Description: "Comma-separated sandboxes to read behaviour from"},
					{Name: "Retrieve Sandbox Analysis", Arg: "retrieve_sandbox_analysis", Kind: Bool, Default: "false", Description: "Fetch sandbox behaviour reports"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
					{Name: "Only Suspicious Entity Insight", Arg: "only_suspicious_entity_insight", Kind: Bool, Default: "false", Description: "Create insights only for suspicious entities"},
					{Name: "Max Comments To Return", Arg: "max_comments_to_return", Kind: String, Default: "10", Description: "Maximum comments per entity"},
					{Name: "Widget Theme", Arg: "widget_theme", Kind: Enum, Default: "Dark", Choices: []string{"Dark", "Light"}, Description: "Theme of the embedded widget"},
					{Name: "Fetch Widget", Arg: "fetch_widget", Kind: Bool, Default: "true", Description: "Fetch the VirusTotal widget"},
				},
			},
			{
				Name:        "Enrich IP",
				Description: "Enrich IP address entities with VirusTotal reputation.",
				Params: []Param{
					{Name: "Engine Threshold", Arg: "engine_threshold", Kind: String, Description: "Number of engines that must flag an IP to mark it suspicious"},
					{Name: "Retrieve Comments", Arg: "retrieve_comments", Kind: Bool, Default: "true", Description: "Fetch community comments"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
					{Name: "Max Comments To Return", Arg: "max_comments_to_return", Kind: String, Default: "10", Description: "Maximum comments per entity"},
				},
			},
			{
				Name:        "Enrich URL",
				Description: "Enrich URL entities with VirusTotal reputation.",
				Params: []Param{
					{Name: "Engine Threshold", Arg: "engine_threshold", Kind: String, Description: "Number of engines that must flag a URL to mark it suspicious"},
					{Name: "Resubmit URL", Arg: "resubmit_url", Kind: Bool, Default: "false", Description: "Force a fresh scan"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Search Graphs",
				Description: "Search VirusTotal graphs with a query.",
				Params: []Param{
					{Name: "Query", Arg: "query", Kind: String, Required: true, Description: "VirusTotal graph search query"},
					{Name: "Sort Field", Arg: "sort_field", Kind: Enum, Default: "owner", Choices: []string{"name", "owner", "creation_date", "last_modified_date", "views_count", "comments_count"}, Description: "Field to sort by"},
					{Name: "Max Graphs To Return", Arg: "max_graphs_to_return", Kind: String, Default: "10", Description: "Maximum graphs to return"},
				},
			},
		},
	},
	{
		Name:        "RecordedFuture",
		Profile:     "recorded_future",
		Description: "Recorded Future intelligence",
		Actions: []Action{
			ping("Recorded Future"),
			{
				Name:        "Enrich IOC",
				Description: "Enrich IP, domain, URL, hash and CVE entities with Recorded Future risk data.",
				Params: []Param{
					{Name: "Risk Score Threshold", Arg: "risk_score_threshold", Kind: String, Default: "25", Description: "Risk score above which an entity is marked suspicious"},
					{Name: "Include Links", Arg: "include_links", Kind: Bool, Default: "false", Description: "Include related links"},
					{Name: "Enable Collective Insights", Arg: "enable_collective_insights", Kind: Bool, Default: "true", Description: "Share detection with Collective Insights"},
				},
			},
			{
				Name:        "Get Alert Details",
				Description: "Fetch a Recorded Future alert.",
				Params: []Param{
					{Name: "Alert ID", Arg: "alert_id", Kind: String, Required: true, Description: "Recorded Future alert ID"},
				},
			},
			{
				Name:        "Update Alert",
				Description: "Change status or assignee of a Recorded Future alert.",
				Params: []Param{
					{Name: "Alert ID", Arg: "alert_id", Kind: String, Required: true, Description: "Recorded Future alert ID"},
					{Name: "Assign To", Arg: "assign_to", Kind: String, Description: "Analyst to assign"},
					{Name: "Note", Arg: "note", Kind: String, Description: "Note to add"},
					{Name: "Status", Arg: "status", Kind: Enum, Default: "Select One", Choices: []string{"Select One", "New", "Pending", "Dismissed", "Resolved", "Flag for Tuning"}, Description: "New alert status"},
				},
			},
		},
	},
	{
		Name:        "MandiantThreatIntelligence",
		Profile:     "mandiant_ti",
		Description: "Mandiant Threat Intelligence",
		Actions: []Action{
			ping("Mandiant Threat Intelligence"),
			{
				Name:        "Enrich IOCs",
				Description: "Enrich indicator entities with Mandiant intelligence.",
				Params: []Param{
					{Name: "Severity Score Threshold", Arg: "severity_score_threshold", Kind: String, Default: "50", Description: "Score (0-100) above which an entity is marked suspicious"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "false", Description: "Create a case insight per entity"},
					{Name: "Only Suspicious Entity Insight", Arg: "only_suspicious_entity_insight", Kind: Bool, Default: "false", Description: "Create insights only for suspicious entities"},
				},
			},
			{
				Name:        "Get Related Entities",
				Description: "List indicators associated with the given entities.",
				Params: []Param{
					{Name: "Lowest Severity Score", Arg: "lowest_severity_score", Kind: String, Required: true, Description: "Lowest severity score of related indicators"},
					{Name: "Max IOCs To Return", Arg: "max_iocs_to_return", Kind: String, Default: "100", Description: "Maximum indicators to return"},
				},
			},
			{
				Name:        "Get Malware Details",
				Description: "Fetch Mandiant details for malware families.",
				Params: []Param{
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
					{Name: "Fetch Related IOCs", Arg: "fetch_related_iocs", Kind: Bool, Default: "true", Description: "Include related indicators"},
					{Name: "Max Related IOCs To Return", Arg: "max_related_iocs_to_return", Kind: String, Default: "100", Description: "Maximum related indicators"},
				},
			},
		},
	},
	{
		Name:        "GoogleThreatIntelligence",
		Profile:     "google_ti",
		Description: "Google Threat Intelligence",
		Actions: []Action{
			ping("Google Threat Intelligence"),
			{
				Name:        "Enrich Hash",
				Description: "Enrich hash entities with Google Threat Intelligence verdicts.",
				Params: []Param{
					{Name: "Engine Threshold", Arg: "engine_threshold", Kind: String, Description: "Number of engines that must flag a hash to mark it suspicious"},
					{Name: "Retrieve AI Summary", Arg: "retrieve_ai_summary", Kind: Bool, Default: "false", Description: "Fetch the generated code insight summary"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Search IOCs",
				Description: "Run an intelligence search query.",
				Params: []Param{
					{Name: "Query", Arg: "query", Kind: String, Required: true, Description: "Search query"},
					{Name: "Sort Field", Arg: "sort_field", Kind: Enum, Default: "Select One", Choices: []string{"Select One", "first_submission_date", "last_submission_date", "positives", "times_submitted"}, Description: "Field to sort by"},
					{Name: "Sort Order", Arg: "sort_order", Kind: Enum, Default: "Descending", Choices: []string{"Ascending", "Descending"}, Description: "Sort direction"},
					{Name: "Max Results To Return", Arg: "max_results_to_return", Kind: String, Default: "50", Description: "Maximum results"},
				},
			},
			{
				Name:        "Get Graph Details",
				Description: "Fetch a Google Threat Intelligence graph.",
				Params: []Param{
					{Name: "Graph ID", Arg: "graph_id", Kind: String, Required: true, Description: "Comma-separated graph IDs"},
					{Name: "Max Links To Return", Arg: "max_links_to_return", Kind: String, Default: "50", Description: "Maximum links per graph"},
				},
			},
		},
	},
}
