package config

import (
	"fmt"
)

// Prompter supplies interactive answers during Initialise. It is satisfied
// by userquery.Terminal; tests supply scripted fakes.
type Prompter interface {
	// Choose presents options and returns the user's selection, which is
	// always one of the given options.
	Choose(prompt string, options []string) (string, error)

	// ReadLine returns one line of free-text input, untrimmed.
	ReadLine(prompt string) (string, error)
}

// baseURIOptions are the OneLogin API servers offered during Initialise.
var baseURIOptions = []string{
	"https://api.us.onelogin.com/",
	"https://api.eu.onelogin.com/",
}

// Initialise walks the user through configuring a profile and saves the
// result to the bound path. An empty configName targets the defaults
// section. Entered values are stored as-is; nothing is validated.
func (f *File) Initialise(p Prompter, configName string) error {
	fmt.Fprint(f.Out, "Configure Onelogin and AWS\n\n")

	if configName == "" {
		configName = f.defaultSection
	}
	section := f.Section(configName)

	baseURI, err := p.Choose("Pick a Onelogin API server:", baseURIOptions)
	if err != nil {
		return err
	}
	section.Set("base_uri", baseURI)

	fmt.Fprint(f.Out, "\nOnelogin API credentials. These can be found at:\n"+
		"https://admin.us.onelogin.com/api_credentials\n")
	clientID, err := p.ReadLine("Onelogin API Client ID: ")
	if err != nil {
		return err
	}
	section.Set("client_id", clientID)

	clientSecret, err := p.ReadLine("Onelogin API Client Secret: ")
	if err != nil {
		return err
	}
	section.Set("client_secret", clientSecret)

	fmt.Fprint(f.Out, "\nOnelogin AWS App ID. This can be found at:\n"+
		"https://admin.us.onelogin.com/apps\n")
	appID, err := p.ReadLine("Onelogin App ID for AWS: ")
	if err != nil {
		return err
	}
	section.Set("aws_app_id", appID)

	fmt.Fprint(f.Out, "\nOnelogin subdomain is 'company' for login domain of"+
		" 'company.onelogin.com'\n")
	subdomain, err := p.ReadLine("Onelogin subdomain: ")
	if err != nil {
		return err
	}
	section.Set("subdomain", subdomain)

	return f.SaveFile()
}
