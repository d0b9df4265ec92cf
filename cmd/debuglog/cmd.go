package main

// CLI defines the root command structure with subcommands
type CLI struct {
	Demo  DemoCmd  `cmd:"" help:"Run a traced sample workload"`
	Match MatchCmd `cmd:"" help:"Check which locations a filter value enables"`
}
