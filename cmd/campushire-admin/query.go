package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// runQuery fetches a backend resource and projects it through a JMESPath
// expression, e.g.:
//
//	campushire-admin query -resource users -q "[?banned].email"
//	campushire-admin query -resource jobs -q "[?minSalary > `100000`].title"
func runQuery(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("query", flag.ContinueOnError)
	token := fs.String("token", "", "admin access token")
	resource := fs.String("resource", "users", "resource to query: users, jobs, applications")
	expr := fs.String("q", "@", "JMESPath expression")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, err := credentialFromFlagOrEnv(*token)
	if err != nil {
		return err
	}

	var rows any
	switch *resource {
	case "users":
		rows, err = ctx.Services.Users.List(ctx.Ctx, cred)
	case "jobs":
		rows, err = ctx.Services.Jobs.List(ctx.Ctx, cred)
	case "applications":
		if fs.Arg(0) == "" {
			return fmt.Errorf("applications queries need a company ID argument")
		}
		rows, err = ctx.Services.Applications.ForCompany(ctx.Ctx, cred, fs.Arg(0))
	default:
		return fmt.Errorf("unknown resource %q", *resource)
	}
	if err != nil {
		return err
	}

	// Round-trip through JSON so the expression sees the wire-format
	// field names, not Go struct names.
	raw, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return err
	}

	result, err := jmespath.Search(*expr, data)
	if err != nil {
		return fmt.Errorf("jmespath: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
