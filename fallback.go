package sitenav

// fallbackNavigation is the hand-authored menu served whenever the content
// tree cannot be scanned (missing root, scan panic, sandboxed execution).
// It mirrors the live curriculum loosely and is maintained by hand; exact
// parity with the content tree is not required, only a usable menu.
var fallbackNavigation = []Section{
	{
		Title: SectionFundamentals,
		Items: []*Item{
			{Title: "Introduction", Href: "/"},
			{Title: "Backend Vocabulary", Href: "/fund-vocabulary"},
			{Title: "How the Web Works", Href: "/fund-how-the-web-works"},
			{Title: "API Design", Href: "/api-design"},
		},
	},
	{
		Title: SectionDatabases,
		Items: []*Item{
			{
				Title: "Storage Engines",
				Href:  "/db-storage-engines",
				Children: []*Item{
					{Title: "Indexes", Href: "/db-storage-engines/indexes"},
					{Title: "Write-Ahead Logs", Href: "/db-storage-engines/write-ahead-logs"},
				},
			},
			{Title: "Transactions", Href: "/db-transactions"},
		},
	},
	{
		Title: SectionSQL,
		Items: []*Item{
			{Title: "SQL Basics", Href: "/sql-basics"},
			{Title: "Joins", Href: "/sql-joins"},
		},
	},
	{
		Title: SectionNoSQL,
		Items: []*Item{
			{Title: "Document Stores", Href: "/nosql-document-stores"},
			{Title: "Key-Value Stores", Href: "/nosql-key-value-stores"},
		},
	},
	{
		Title: SectionProjects,
		Items: []*Item{
			{Title: "URL Shortener", Href: "/proj-url-shortener"},
		},
	},
	{
		Title: SectionUtilities,
		Items: []*Item{
			{Title: "Docker", Href: "/util-docker"},
			{Title: "Deployment", Href: "/dep-deployment"},
		},
	},
	{
		Title: SectionAdvanced,
		Items: []*Item{
			{Title: "Caching", Href: "/perf-caching"},
			{Title: "Authentication", Href: "/sec-authentication"},
			{Title: "Message Queues", Href: "/adv-message-queues"},
		},
	},
}

// DefaultFallback returns the compiled-in fallback navigation. Every call
// returns a fresh deep copy so callers may annotate or trim it freely.
func DefaultFallback() []Section {
	return CloneSections(fallbackNavigation)
}
