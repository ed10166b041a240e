package layouteditor

import "sync"

// Rect видимая геометрия объекта на поверхности
type Rect struct {
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Fill     string
	Rotation float64
}

// Object элемент рабочей поверхности редактора
// Rect может быть nil, такой объект не имеет видимой геометрии
// и отбрасывается при сохранении разметки
type Object struct {
	ID     string
	DeskID string
	Name   string
	Rect   *Rect
}

// memorySurface in-memory реализация Surface для одной сессии редактирования
type memorySurface struct {
	mu       sync.Mutex
	order    []string
	objects  map[string]*Object
	selected string
}

// NewMemorySurface создает пустую рабочую поверхность
func NewMemorySurface() Surface {
	return &memorySurface{
		objects: make(map[string]*Object),
	}
}

func (s *memorySurface) AddObject(obj *Object) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[obj.ID]; !ok {
		s.order = append(s.order, obj.ID)
	}
	s.objects[obj.ID] = obj
}

func (s *memorySurface) RemoveObject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.objects[id]; !ok {
		return
	}
	delete(s.objects, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == id {
		s.selected = ""
	}
}

func (s *memorySurface) ObjectByID(id string) (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[id]
	return obj, ok
}

func (s *memorySurface) Objects() []*Object {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.objects[id])
	}
	return result
}

func (s *memorySurface) SetTransform(id string, rect Rect) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	obj, ok := s.objects[id]
	if !ok {
		return false
	}
	r := rect
	obj.Rect = &r
	return true
}

func (s *memorySurface) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.selected = ""
		return true
	}
	if _, ok := s.objects[id]; !ok {
		return false
	}
	s.selected = id
	return true
}

func (s *memorySurface) Selected() (*Object, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == "" {
		return nil, false
	}
	obj, ok := s.objects[s.selected]
	return obj, ok
}

func (s *memorySurface) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = nil
	s.objects = make(map[string]*Object)
	s.selected = ""
}
