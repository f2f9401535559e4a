package integrations

var endpoint = []Integration{
	{
		Name:        "CrowdStrikeFalcon",
		Profile:     "crowdstrike",
		Description: "CrowdStrike Falcon EDR",
		Actions: []Action{
			ping("CrowdStrike Falcon"),
			{
				Name:        "Get Host Information",
				Description: "Fetch Falcon host details for hostname and IP entities.",
				Params: []Param{
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Contain Endpoint",
				Description: "Network-contain the hosts behind the entities.",
				Params: []Param{
					{Name: "Fail If Timeout", Arg: "fail_if_timeout", Kind: Bool, Default: "true", Description: "Fail when containment does not finish in time"},
				},
			},
			{
				Name:        "Lift Contained Endpoint",
				Description: "Release hosts from network containment.",
				Params: []Param{
					{Name: "Fail If Timeout", Arg: "fail_if_timeout", Kind: Bool, Default: "true", Description: "Fail when the release does not finish in time"},
				},
			},
			{
				Name:        "List Host Vulnerabilities",
				Description: "List Spotlight vulnerabilities for host entities.",
				Params: []Param{
					{Name: "Severity Filter", Arg: "severity_filter", Kind: String, Description: "Comma-separated severities: critical, high, medium, low, unknown"},
					{Name: "Max Records To Return", Arg: "max_records_to_return", Kind: String, Default: "100", Description: "Maximum vulnerabilities per host"},
					{Name: "Create Insight", Arg: "create_insight", Kind: Bool, Default: "true", Description: "Create a case insight per entity"},
				},
			},
			{
				Name:        "Submit File",
				Description: "Submit a file path to the Falcon sandbox.",
				Params: []Param{
					{Name: "File Paths", Arg: "file_paths", Kind: String, Required: true, Description: "Comma-separated absolute file paths"},
					{Name: "Sandbox Environment", Arg: "sandbox_environment", Kind: Enum, Default: "Windows 10, 64-bit", Choices: []string{"Windows 10, 64-bit", "Windows 7, 64-bit", "Windows 7, 32-bit", "Linux Ubuntu 16.04, 64-bit", "Android (static analysis)"}, Description: "Detonation environment"},
					{Name: "Network Environment", Arg: "network_environment", Kind: Enum, Default: "Default", Choices: []string{"Default", "Tor", "Simulated", "Offline"}, Description: "Network profile"},
				},
			},
		},
	},
	{
		Name:        "MicrosoftDefenderATP",
		Profile:     "defender_atp",
		Description: "Microsoft Defender for Endpoint",
		Actions: []Action{
			ping("Microsoft Defender ATP"),
			{
				Name:        "Isolate Machine",
				Description: "Isolate the machines behind the entities.",
				Params: []Param{
					{Name: "Isolation Type", Arg: "isolation_type", Kind: Enum, Default: "Full", Choices: []string{"Full", "Selective"}, Description: "Full or selective isolation"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Reason for isolation"},
				},
			},
			{
				Name:        "Unisolate Machine",
				Description: "Release machines from isolation.",
				Params: []Param{
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Reason for release"},
				},
			},
			{
				Name:        "Run Antivirus Scan",
				Description: "Start an antivirus scan on the machines.",
				Params: []Param{
					{Name: "Antivirus Scan Type", Arg: "antivirus_scan_type", Kind: Enum, Default: "Full", Choices: []string{"Full", "Quick"}, Description: "Scan type"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Reason for the scan"},
				},
			},
			{
				Name:        "Run Advanced Hunting Query",
				Description: "Run a Kusto advanced hunting query.",
				Params: []Param{
					{Name: "Query", Arg: "query", Kind: String, Required: true, Description: "KQL query"},
					{Name: "Max Results To Return", Arg: "max_results_to_return", Kind: String, Default: "50", Description: "Maximum rows"},
				},
			},
		},
	},
}
