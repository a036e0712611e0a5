package outputhelper

import (
	"bytes"
	"fmt"

	"github.com/taskenv/cli/internal/output"
)

type Catcher struct {
	output.Outputer
	outWriter *bytes.Buffer
	errWriter *bytes.Buffer
}

func NewCatcher() *Catcher {
	catch := &Catcher{}

	catch.outWriter = &bytes.Buffer{}
	catch.errWriter = &bytes.Buffer{}

	outputer, err := output.New(string(output.PlainFormatName), &output.Config{
		OutWriter:   catch.outWriter,
		ErrWriter:   catch.errWriter,
		Colored:     false,
		Interactive: false,
	})
	if err != nil {
		panic(fmt.Sprintf("Could not create plain outputer: %s", err.Error()))
	}

	catch.Outputer = outputer
	return catch
}

func (c *Catcher) Output() string {
	return c.outWriter.String()
}

func (c *Catcher) ErrorOutput() string {
	return c.errWriter.String()
}

func (c *Catcher) CombinedOutput() string {
	return c.Output() + "\n" + c.ErrorOutput()
}
