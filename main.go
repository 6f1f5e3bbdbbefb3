package main

import "github.com/dojohq/portal-api/cmd"

// @title           Dojo Portal API
// @version         1.0.0
// @description     Membership association portal backend: training sessions, bookmarks, events, RSVPs, attendance
// @contact.name    API Support
// @contact.url     https://github.com/dojohq/portal-api
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:8080
// @BasePath        /
// @schemes         http https
func main() {
	cmd.Execute()
}
