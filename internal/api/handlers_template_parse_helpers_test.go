package api

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/customizeworkflow/portal/internal/services"
)

func TestParsePageTemplatesRendersThroughBase(t *testing.T) {
	files := fstest.MapFS{
		"base.html":  {Data: []byte(`{{define "base"}}<main>{{template "content" .}}</main>{{end}}`)},
		"hello.html": {Data: []byte(`{{define "content"}}hello {{upper .Name}}{{end}}`)},
	}
	funcMap := template.FuncMap{"upper": strings.ToUpper}

	templates, err := parsePageTemplates(files, funcMap, []string{"hello"})
	if err != nil {
		t.Fatalf("parsePageTemplates() unexpected error: %v", err)
	}

	var output bytes.Buffer
	if err := templates["hello"].ExecuteTemplate(&output, "base", map[string]string{"Name": "jane"}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if output.String() != "<main>hello JANE</main>" {
		t.Fatalf("unexpected output %q", output.String())
	}
}

func TestParsePageTemplatesRejectsPageWithoutContent(t *testing.T) {
	files := fstest.MapFS{
		"base.html":  {Data: []byte(`{{define "base"}}{{template "content" .}}{{end}}`)},
		"empty.html": {Data: []byte(`{{define "other"}}x{{end}}`)},
	}

	if _, err := parsePageTemplates(files, template.FuncMap{}, []string{"empty"}); err == nil {
		t.Fatal("expected error for page without content block")
	}
}

func TestParsePageTemplatesMissingFile(t *testing.T) {
	files := fstest.MapFS{
		"base.html": {Data: []byte(`{{define "base"}}{{end}}`)},
	}

	if _, err := parsePageTemplates(files, template.FuncMap{}, []string{"missing"}); err == nil {
		t.Fatal("expected error for missing page file")
	}
}

func TestPageTemplatesParseWithHandlerFuncMap(t *testing.T) {
	templates, err := parsePageTemplates(os.DirFS(filepath.Join("..", "templates")), templateFuncMap(), pageTemplates)
	if err != nil {
		t.Fatalf("parse page templates: %v", err)
	}
	for _, page := range pageTemplates {
		if templates[page] == nil {
			t.Fatalf("expected parsed template for %s", page)
		}
	}
}

func TestSignupSecurityStepEmbedsStrengthAsJSON(t *testing.T) {
	templates, err := parsePageTemplates(os.DirFS(filepath.Join("..", "templates")), templateFuncMap(), pageTemplates)
	if err != nil {
		t.Fatalf("parse page templates: %v", err)
	}

	wizard := services.NewSignupWizard(services.DefaultSignupSteps...)
	values := signupStepValues("jane@example.com", "Abcdef1!")
	for wizard.CurrentStep() != services.StepSecurity {
		applySignupValues(wizard, flattenValues(values[wizard.Step()-1]))
		if !wizard.Advance() {
			t.Fatalf("advance from step %d: %v", wizard.Step(), wizard.Errors())
		}
	}
	applySignupValues(wizard, flattenValues(values[wizard.Step()-1]))

	data := buildSignupPageData(wizard, "")
	data["SiteName"] = siteName
	data["CSRFToken"] = "token"

	var output bytes.Buffer
	if err := templates["signup"].ExecuteTemplate(&output, "base", data); err != nil {
		t.Fatalf("execute signup: %v", err)
	}
	body := output.String()
	if !strings.Contains(body, `"label":"Strong"`) || !strings.Contains(body, `"strength":100`) {
		t.Fatalf("expected strength JSON in page script, got %s", body)
	}
}
