package main

import (
	"flag"
	"os"
	"text/tabwriter"
)

func runListUsers(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	token := fs.String("token", "", "admin access token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, err := credentialFromFlagOrEnv(*token)
	if err != nil {
		return err
	}

	users, err := ctx.Services.Users.List(ctx.Ctx, cred)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(tw, "USERID\tNAME\tEMAIL\tROLE\tVERIFIED\tBANNED\n"); err != nil {
		return err
	}
	for _, u := range users {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%t\t%t\n",
			u.UserID, u.Name, u.Email, u.Role, u.Verified, u.Banned); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runListJobs(ctx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-jobs", flag.ContinueOnError)
	token := fs.String("token", "", "admin access token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cred, err := credentialFromFlagOrEnv(*token)
	if err != nil {
		return err
	}

	jobs, err := ctx.Services.Jobs.List(ctx.Ctx, cred)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(tw, "ID\tTITLE\tCOMPANY\tLOCATION\tDEADLINE\tVISIBILITY\n"); err != nil {
		return err
	}
	for _, j := range jobs {
		if err := writef(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			j.ID, j.Title, j.CompanyID, j.Location, j.ApplicationDeadline, j.Visibility); err != nil {
			return err
		}
	}
	return tw.Flush()
}
