package cmd

type Context struct {
	Debug bool
}

var CLI struct {
	Debug bool `help:"Enable debug mode"`

	Serve    ServeCmd    `cmd:"" default:"1"                      help:"Run the server"`
	Migrate  MigrateCmd  `cmd:"" help:"Run database migrations"`
	Category CategoryCmd `cmd:"" help:"Manage recipe categories"`
	User     UserCmd     `cmd:"" help:"Manage users"`
	Token    TokenCmd    `cmd:"" help:"Issue an access token for a user"`
	Import   ImportCmd   `cmd:"" help:"Import a recipe from a web page"`
}
