package nswitch

import (
	"io"
	"os"

	"github.com/AlekSi/pointer"
	"github.com/pkg/errors"
)

// InputFileOption names a file to read.  The file is opened the first
// time Reader is called.  Without a value, Reader returns standard input.
// The default names are "--input" and "-i".
type InputFileOption struct {
	PathOption
	file *os.File
}

var _ Getter = &InputFileOption{}

func (p *Parser) InputFile(meta Meta) *InputFileOption {
	o := &InputFileOption{}
	p.Add(o, meta)
	return o
}

func (o *InputFileOption) DefaultMeta() Meta {
	return Meta{
		Name:        "--input",
		ShortName:   pointer.ToString("-i"),
		Description: pointer.ToString("The file to read instead of standard input."),
	}
}

func (o *InputFileOption) Set(raw string) error {
	if current, ok := o.Raw(); ok && current != raw {
		if err := o.Close(); err != nil {
			return err
		}
	}
	o.SetRaw(raw)
	return nil
}

// Reader opens the file if needed
func (o *InputFileOption) Reader() (io.Reader, error) {
	if o.file != nil {
		return o.file, nil
	}
	path, ok := o.Raw()
	if !ok || path == "" {
		return os.Stdin, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", o.Name())
	}
	o.file = f
	return f, nil
}

// Close closes the file if Reader opened it
func (o *InputFileOption) Close() error {
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return errors.Wrapf(err, "close %s", o.Name())
}

func (o *InputFileOption) reset() {
	_ = o.Close()
}

// OutputFileOption names a file to write.  The file is created the first
// time Writer is called.  Without a value, Writer returns standard output.
// The default names are "--output" and "-o".
type OutputFileOption struct {
	PathOption
	file *os.File
}

var _ Getter = &OutputFileOption{}

func (p *Parser) OutputFile(meta Meta) *OutputFileOption {
	o := &OutputFileOption{}
	p.Add(o, meta)
	return o
}

func (o *OutputFileOption) DefaultMeta() Meta {
	return Meta{
		Name:        "--output",
		ShortName:   pointer.ToString("-o"),
		Description: pointer.ToString("The file to write instead of standard output."),
	}
}

func (o *OutputFileOption) Set(raw string) error {
	if current, ok := o.Raw(); ok && current != raw {
		if err := o.Close(); err != nil {
			return err
		}
	}
	o.SetRaw(raw)
	return nil
}

// Writer creates the file if needed
func (o *OutputFileOption) Writer() (io.Writer, error) {
	if o.file != nil {
		return o.file, nil
	}
	path, ok := o.Raw()
	if !ok || path == "" {
		return os.Stdout, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", o.Name())
	}
	o.file = f
	return f, nil
}

// Close closes the file if Writer created it
func (o *OutputFileOption) Close() error {
	if o.file == nil {
		return nil
	}
	err := o.file.Close()
	o.file = nil
	return errors.Wrapf(err, "close %s", o.Name())
}

func (o *OutputFileOption) reset() {
	_ = o.Close()
}
