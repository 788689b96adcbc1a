package pointer

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Pointer
		wantErr bool
	}{
		{
			name:  "root",
			input: "",
			want:  Pointer{},
		},
		{
			name:  "single token",
			input: "/foo",
			want:  Pointer{"foo"},
		},
		{
			name:  "nested tokens",
			input: "/foo/bar/0",
			want:  Pointer{"foo", "bar", "0"},
		},
		{
			name:  "empty token",
			input: "/",
			want:  Pointer{""},
		},
		{
			name:  "empty middle token",
			input: "/a//b",
			want:  Pointer{"a", "", "b"},
		},
		{
			name:  "escaped slash",
			input: "/a~1b",
			want:  Pointer{"a/b"},
		},
		{
			name:  "escaped tilde",
			input: "/m~0n",
			want:  Pointer{"m~n"},
		},
		{
			name:  "tilde then slash escapes",
			input: "/~01",
			want:  Pointer{"~1"},
		},
		{
			name:  "append marker",
			input: "/foo/-",
			want:  Pointer{"foo", "-"},
		},
		{
			name:    "missing leading slash",
			input:   "foo",
			wantErr: true,
		},
		{
			name:    "dangling tilde",
			input:   "/a~",
			wantErr: true,
		},
		{
			name:    "bad escape",
			input:   "/a~2b",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if err != nil {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Parse(%q) error = %v, want ErrInvalid", tt.input, err)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		ptr  Pointer
		want string
	}{
		{
			name: "root",
			ptr:  Pointer{},
			want: "",
		},
		{
			name: "plain tokens",
			ptr:  Pointer{"foo", "0"},
			want: "/foo/0",
		},
		{
			name: "slash in token",
			ptr:  Pointer{"a/b"},
			want: "/a~1b",
		},
		{
			name: "tilde in token",
			ptr:  Pointer{"m~n"},
			want: "/m~0n",
		},
		{
			name: "tilde before slash",
			ptr:  Pointer{"~/"},
			want: "/~0~1",
		},
		{
			name: "empty token",
			ptr:  Pointer{""},
			want: "/",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ptr.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			back, err := Parse(tt.want)
			if err != nil {
				t.Errorf("Parse(%q) error = %v", tt.want, err)
				return
			}
			if !reflect.DeepEqual(back, tt.ptr) {
				t.Errorf("Parse(String()) = %#v, want %#v", back, tt.ptr)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    int
		wantErr bool
	}{
		{name: "zero", token: "0", want: 0},
		{name: "plain", token: "12", want: 12},
		{name: "leading zero", token: "01", wantErr: true},
		{name: "empty", token: "", wantErr: true},
		{name: "negative", token: "-1", wantErr: true},
		{name: "signed", token: "+1", wantErr: true},
		{name: "not a number", token: "a", wantErr: true},
		{name: "float", token: "1.5", wantErr: true},
		{name: "append marker", token: "-", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Index(tt.token)
			if (err != nil) != tt.wantErr {
				t.Errorf("Index(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
				return
			}
			if err != nil {
				if !errors.Is(err, ErrInvalid) {
					t.Errorf("Index(%q) error = %v, want ErrInvalid", tt.token, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Index(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name  string
		p     Pointer
		other Pointer
		want  bool
	}{
		{name: "root contains all", p: Pointer{}, other: Pointer{"a", "b"}, want: true},
		{name: "self", p: Pointer{"a"}, other: Pointer{"a"}, want: true},
		{name: "child", p: Pointer{"a"}, other: Pointer{"a", "b"}, want: true},
		{name: "sibling", p: Pointer{"a"}, other: Pointer{"b"}, want: false},
		{name: "parent", p: Pointer{"a", "b"}, other: Pointer{"a"}, want: false},
		{name: "diverging", p: Pointer{"a", "b"}, other: Pointer{"a", "c", "d"}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Contains(tt.other); got != tt.want {
				t.Errorf("%q.Contains(%q) = %v, want %v", tt.p, tt.other, got, tt.want)
			}
		})
	}
}

func TestChild(t *testing.T) {
	p := Pointer{"a"}
	c1 := p.Child("b")
	c2 := p.Child("c")
	if got, want := c1.String(), "/a/b"; got != want {
		t.Errorf("Child = %q, want %q", got, want)
	}
	if got, want := c2.String(), "/a/c"; got != want {
		t.Errorf("Child = %q, want %q", got, want)
	}
	if got, want := p.String(), "/a"; got != want {
		t.Errorf("parent changed to %q, want %q", got, want)
	}
}
