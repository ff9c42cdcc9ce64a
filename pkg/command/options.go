package command

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/bwmarrin/discordgo"
)

var ErrDecodeOption = errors.New("error while decoding options")

type discordValue interface {
	string | int | bool
}

// discordField carries an option value together with whether the user is
// currently typing into it.
type discordField[T discordValue] struct {
	Value   T
	Focused bool
}

var fieldTypes = map[reflect.Type]bool{
	reflect.TypeOf(discordField[string]{}): true,
	reflect.TypeOf(discordField[int]{}):    true,
	reflect.TypeOf(discordField[bool]{}):   true,
}

// decodeOptions fills the fields of structure tagged `option:"name"` from the
// interaction options. Optional options are pointer fields left nil when
// absent.
func decodeOptions(options []*discordgo.ApplicationCommandInteractionDataOption, structure any) (ret error) {
	defer func() {
		r := recover()
		if err, ok := r.(*reflect.ValueError); ok {
			ret = fmt.Errorf("reflection error while decoding options: %v: %w", err, ErrDecodeOption)
		} else if r != nil {
			panic(r)
		}
	}()

	value := reflect.Indirect(reflect.ValueOf(structure))
	if !value.CanAddr() || value.Kind() != reflect.Struct {
		return fmt.Errorf("value is not an addressable struct: %w", ErrDecodeOption)
	}

	fields := make(map[string]reflect.Value, value.NumField())
	for i := 0; i < value.NumField(); i++ {
		option := value.Type().Field(i).Tag.Get("option")
		if option == "" {
			continue
		}

		field := value.Field(i)
		if !field.CanSet() {
			return fmt.Errorf("field for option %q cannot be set: %w", option, ErrDecodeOption)
		}
		fields[option] = field
	}

	for _, option := range options {
		field, ok := fields[option.Name]
		if !ok {
			return fmt.Errorf("unexpected option name %q: %w", option.Name, ErrDecodeOption)
		}

		if field.Kind() == reflect.Pointer {
			ptr := reflect.New(field.Type().Elem())
			field.Set(ptr)
			field = ptr.Elem()
		}
		if field.Kind() == reflect.Struct && fieldTypes[field.Type()] {
			field.FieldByName("Focused").SetBool(option.Focused)
			field = field.FieldByName("Value")
		}

		switch {
		case option.Type == discordgo.ApplicationCommandOptionString && field.Kind() == reflect.String:
			field.SetString(option.StringValue())
		case option.Type == discordgo.ApplicationCommandOptionInteger && field.Kind() == reflect.Int:
			field.SetInt(option.IntValue())
		case option.Type == discordgo.ApplicationCommandOptionBoolean && field.Kind() == reflect.Bool:
			field.SetBool(option.BoolValue())
		default:
			return fmt.Errorf("unexpected type %q for option %q: %w", option.Type, option.Name, ErrDecodeOption)
		}
	}

	return nil
}

var ErrEncodeOptions = errors.New("error while encoding options")

// encoder writes options in a compact big-endian form small enough for a
// button custom ID.
type encoder struct {
	Writer io.Writer
}

func (e *encoder) encode(value reflect.Value) error {
	switch value.Kind() {
	case reflect.Int:
		return binary.Write(e.Writer, binary.BigEndian, int32(value.Int()))
	case reflect.Bool:
		return binary.Write(e.Writer, binary.BigEndian, value.Bool())
	case reflect.String:
		b := []byte(value.String())
		if len(b) > 0xff {
			return fmt.Errorf("string of length %d is too long: %w", len(b), ErrEncodeOptions)
		}
		err := binary.Write(e.Writer, binary.BigEndian, uint8(len(b)))
		if err != nil {
			return fmt.Errorf("failed to write length for string value: %w", err)
		}
		_, err = e.Writer.Write(b)
		return err
	case reflect.Pointer:
		err := binary.Write(e.Writer, binary.BigEndian, !value.IsNil())
		if err != nil {
			return fmt.Errorf("failed to write nil marker for pointer: %w", err)
		}
		if value.IsNil() {
			return nil
		}
		return e.encode(value.Elem())
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := e.encode(value.Field(i))
			if err != nil {
				return fmt.Errorf("error while encoding field %q: %w", value.Type().Field(i).Name, err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported kind %s: %w", value.Kind(), ErrEncodeOptions)
	}
}

func marshal(structure any) (string, error) {
	var buf bytes.Buffer
	enc := encoder{&buf}
	err := enc.encode(reflect.ValueOf(structure))
	if err != nil {
		return "", fmt.Errorf("failed to marshal structure: %w", err)
	}

	return buf.String(), nil
}

type decoder struct {
	Reader io.Reader
}

func (d *decoder) decode(value reflect.Value) error {
	switch value.Kind() {
	case reflect.Int:
		var v int32
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read int value: %w", err)
		}
		value.SetInt(int64(v))
	case reflect.Bool:
		var v bool
		err := binary.Read(d.Reader, binary.BigEndian, &v)
		if err != nil {
			return fmt.Errorf("failed to read boolean value: %w", err)
		}
		value.SetBool(v)
	case reflect.String:
		var l uint8
		err := binary.Read(d.Reader, binary.BigEndian, &l)
		if err != nil {
			return fmt.Errorf("failed to read length for string value: %w", err)
		}
		buf := make([]byte, l)
		_, err = io.ReadFull(d.Reader, buf)
		if err != nil {
			return fmt.Errorf("failed to read string value: %w", err)
		}
		value.SetString(string(buf))
	case reflect.Pointer:
		var present bool
		err := binary.Read(d.Reader, binary.BigEndian, &present)
		if err != nil {
			return fmt.Errorf("failed to check if pointer is nil: %w", err)
		}
		if !present {
			value.Set(reflect.Zero(value.Type()))
			return nil
		}
		ptr := reflect.New(value.Type().Elem())
		err = d.decode(ptr.Elem())
		if err != nil {
			return fmt.Errorf("error while decoding pointer element: %w", err)
		}
		value.Set(ptr)
	case reflect.Struct:
		for i := 0; i < value.NumField(); i++ {
			err := d.decode(value.Field(i))
			if err != nil {
				return fmt.Errorf("error while decoding field %q: %w", value.Type().Field(i).Name, err)
			}
		}
	default:
		return fmt.Errorf("unsupported kind %s: %w", value.Kind(), ErrDecodeOption)
	}

	return nil
}

func unmarshal[T any](reader io.Reader) (*T, error) {
	var structure T
	dec := decoder{Reader: reader}
	err := dec.decode(reflect.ValueOf(&structure).Elem())
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal data: %w", err)
	}

	return &structure, nil
}
