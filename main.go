package main

import "opsboard/internal/app"

// @title           OpsBoard API
// @version         1.0
// @description     Internal operations dashboard: kanban tasks, projects, prompts and the account vault.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	app.Run()
}
