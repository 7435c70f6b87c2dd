package locale

// Namespace 翻译资源的逻辑分组，每个 (语言, namespace) 对应一个资源文件
type Namespace string

const (
	NSGlobal   Namespace = "global"
	NSSettings Namespace = "settings"
	NSRooms    Namespace = "rooms"
)

var namespaces = []Namespace{NSGlobal, NSSettings, NSRooms}

// Namespaces 返回全部 namespace 的副本
func Namespaces() []Namespace {
	out := make([]Namespace, len(namespaces))
	copy(out, namespaces)
	return out
}

func (n Namespace) String() string {
	return string(n)
}
