package astenc

import (
	"bytes"
	"encoding/json"
)

// eachField calls emit for the kind tag and then every field of d's
// variant in declaration order. Lists are always emitted; absent optional
// text is skipped.
func (d *Doc) eachField(emit func(name string, v any)) {
	emit("kind", d.Kind)
	if d.Span != nil {
		emit("span", d.Span)
	}
	optional := func(name string, s *string) {
		if s != nil {
			emit(name, *s)
		}
	}
	switch d.Kind {
	case "source":
		emit("items", docs(d.Items))
	case "class":
		emit("name", d.Name)
		optional("extends", d.Extends)
		emit("members", docs(d.Items))
		emit("terminated", d.Terminated)
	case "module":
		emit("name", d.Name)
		emit("params", strs(d.Params))
		emit("ports", strs(d.Ports))
		emit("body", d.Body)
	case "function":
		emit("lifetime", d.Lifetime)
		emit("return_type", d.ReturnType)
		emit("name", d.Name)
		emit("args", strs(d.Args))
		emit("body", d.Body)
	case "signal":
		emit("direction", d.Direction)
		emit("data_type", d.DataType)
		optional("width", d.Width)
		emit("names", strs(d.Names))
	case "always":
		emit("process", d.Process)
		optional("sensitivity", d.Sensitivity)
		emit("body", d.Body)
	case "if":
		emit("cond", d.Cond)
		emit("then", d.Then)
		if d.Else != nil {
			emit("else", d.Else)
		}
	case "case":
		emit("expr", d.Expr)
		emit("body", d.Body)
	case "block":
		emit("body", d.Body)
	case "statement":
		emit("code", d.Code)
	}
}

func (b *BlockDoc) eachField(emit func(name string, v any)) {
	if b.Span != nil {
		emit("span", b.Span)
	}
	emit("items", docs(b.Items))
	emit("terminated", b.Terminated)
}

// MarshalJSON writes the fields in eachField order.
func (d *Doc) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	d.eachField(w.field)
	return w.finish()
}

// UnmarshalJSON accepts the layout MarshalJSON writes. Class members are
// read from "members".
func (d *Doc) UnmarshalJSON(data []byte) error {
	type plain Doc
	var aux struct {
		*plain
		Members []*Doc `json:"members"`
	}
	aux.plain = (*plain)(d)
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Members != nil {
		d.Items = aux.Members
	}
	return nil
}

// MarshalJSON keeps items as an array even when empty.
func (b *BlockDoc) MarshalJSON() ([]byte, error) {
	w := objectWriter{}
	b.eachField(w.field)
	return w.finish()
}

type objectWriter struct {
	buf bytes.Buffer
	err error
}

func (w *objectWriter) field(name string, v any) {
	if w.err != nil {
		return
	}
	val, err := json.Marshal(v)
	if err != nil {
		w.err = err
		return
	}
	if w.buf.Len() == 0 {
		w.buf.WriteByte('{')
	} else {
		w.buf.WriteByte(',')
	}
	key, _ := json.Marshal(name)
	w.buf.Write(key)
	w.buf.WriteByte(':')
	w.buf.Write(val)
}

func (w *objectWriter) finish() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	if w.buf.Len() == 0 {
		return []byte("{}"), nil
	}
	w.buf.WriteByte('}')
	return w.buf.Bytes(), nil
}

func docs(d []*Doc) []*Doc {
	if d == nil {
		return []*Doc{}
	}
	return d
}

func strs(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
