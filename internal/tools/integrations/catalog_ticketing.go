package integrations

var ticketing = []Integration{
	{
		Name:        "ServiceNow",
		Profile:     "servicenow",
		Description: "ServiceNow ITSM",
		Actions: []Action{
			ping("ServiceNow"),
			{
				Name:        "Create Incident",
				Description: "Open a ServiceNow incident.",
				Params: []Param{
					{Name: "Short Description", Arg: "short_description", Kind: String, Required: true, Description: "Incident title"},
					{Name: "Impact", Arg: "impact", Kind: Enum, Required: true, Choices: []string{"1", "2", "3"}, Description: "1 high, 2 medium, 3 low"},
					{Name: "Urgency", Arg: "urgency", Kind: Enum, Required: true, Choices: []string{"1", "2", "3"}, Description: "1 high, 2 medium, 3 low"},
					{Name: "Category", Arg: "category", Kind: String, Description: "Incident category"},
					{Name: "Assignment Group ID", Arg: "assignment_group_id", Kind: String, Description: "Assignment group sys_id"},
					{Name: "Assigned User ID", Arg: "assigned_user_id", Kind: String, Description: "Assignee sys_id"},
					{Name: "Description", Arg: "description", Kind: String, Description: "Incident body"},
				},
			},
			{
				Name:        "Add Comment",
				Description: "Add a comment to a ServiceNow incident.",
				Params: []Param{
					{Name: "Incident Number", Arg: "incident_number", Kind: String, Required: true, Description: "Incident number, e.g. INC0000051"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Comment text"},
				},
			},
			{
				Name:        "Close Incident",
				Description: "Close a ServiceNow incident.",
				Params: []Param{
					{Name: "Incident Number", Arg: "incident_number", Kind: String, Required: true, Description: "Incident number"},
					{Name: "Close Reason", Arg: "close_reason", Kind: String, Required: true, Description: "Close notes"},
					{Name: "Resolution Code", Arg: "resolution_code", Kind: Enum, Required: true, Choices: []string{"Solved (Work Around)", "Solved (Permanently)", "Solved Remotely (Work Around)", "Solved Remotely (Permanently)", "Not Solved (Not Reproducible)", "Not Solved (Too Costly)", "Closed/Resolved by Caller"}, Description: "Resolution code"},
				},
			},
			{
				Name:        "Get Incident",
				Description: "Fetch a ServiceNow incident.",
				Params: []Param{
					{Name: "Incident Number", Arg: "incident_number", Kind: String, Required: true, Description: "Incident number"},
					{Name: "Fields", Arg: "fields", Kind: String, Description: "Comma-separated fields to return"},
				},
			},
		},
	},
	{
		Name:        "Jira",
		Profile:     "jira",
		Description: "Atlassian Jira",
		Actions: []Action{
			ping("Jira"),
			{
				Name:        "Create Issue",
				Description: "Create a Jira issue.",
				Params: []Param{
					{Name: "Project Key", Arg: "project_key", Kind: String, Required: true, Description: "Jira project key"},
					{Name: "Summary", Arg: "summary", Kind: String, Required: true, Description: "Issue summary"},
					{Name: "Issue Type", Arg: "issue_type", Kind: String, Required: true, Description: "Issue type, e.g. Task"},
					{Name: "Description", Arg: "description", Kind: String, Description: "Issue body"},
					{Name: "Assignee", Arg: "assignee", Kind: String, Description: "Assignee account ID"},
					{Name: "Components", Arg: "components", Kind: String, Description: "Comma-separated components"},
					{Name: "Labels", Arg: "labels", Kind: String, Description: "Comma-separated labels"},
				},
			},
			{
				Name:        "Add Comment",
				Description: "Comment on a Jira issue.",
				Params: []Param{
					{Name: "Issue Key", Arg: "issue_key", Kind: String, Required: true, Description: "Issue key, e.g. SEC-12"},
					{Name: "Comment", Arg: "comment", Kind: String, Required: true, Description: "Comment text"},
				},
			},
			{
				Name:        "Search Issues",
				Description: "Search Jira issues.",
				Params: []Param{
					{Name: "Project Key", Arg: "project_key", Kind: String, Description: "Restrict to a project"},
					{Name: "Summary", Arg: "summary", Kind: String, Description: "Text contained in the summary"},
					{Name: "Status", Arg: "status", Kind: String, Description: "Comma-separated statuses"},
					{Name: "Max Results", Arg: "max_results", Kind: String, Default: "50", Description: "Maximum issues to return"},
				},
			},
			{
				Name:        "Update Issue",
				Description: "Update status or fields of a Jira issue.",
				Params: []Param{
					{Name: "Issue Key", Arg: "issue_key", Kind: String, Required: true, Description: "Issue key"},
					{Name: "Status", Arg: "status", Kind: String, Description: "Target status"},
					{Name: "Summary", Arg: "summary", Kind: String, Description: "New summary"},
					{Name: "Assignee", Arg: "assignee", Kind: String, Description: "Assignee account ID"},
				},
			},
		},
	},
}
