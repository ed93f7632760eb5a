package service_test

// In-memory repository fakes shared by the service tests.

import (
	"context"
	"errors"
	"time"

	"github.com/Gabriel-DAloia/Areatrans-Proyecto-Heineken/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var errNotFound = errors.New("not found")

func mustUUID() uuid.UUID { return uuid.New() }

func userFixture(email string, isAdmin, isApproved bool) *model.User {
	return &model.User{Email: email, PasswordHash: "x", FullName: email, IsAdmin: isAdmin, IsApproved: isApproved}
}

// ── Users ────────────────────────────────────────────────────────────────────

type memUserRepo struct {
	users map[uuid.UUID]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[uuid.UUID]*model.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *model.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.CreatedAt = time.Now()
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, errNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) ListPending(_ context.Context) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if !u.IsApproved {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Update(_ context.Context, u *model.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.users[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *memUserRepo) CountPending(_ context.Context) (int64, error) {
	var n int64
	for _, u := range r.users {
		if !u.IsApproved {
			n++
		}
	}
	return n, nil
}

// ── Hubs ─────────────────────────────────────────────────────────────────────

type memHubRepo struct {
	hubs map[uuid.UUID]*model.Hub
}

func newMemHubRepo() *memHubRepo {
	return &memHubRepo{hubs: make(map[uuid.UUID]*model.Hub)}
}

func (r *memHubRepo) addHub(name string) uuid.UUID {
	h := &model.Hub{ID: uuid.New(), Name: name, CreatedAt: time.Now()}
	r.hubs[h.ID] = h
	return h.ID
}

func (r *memHubRepo) Create(_ context.Context, h *model.Hub) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	h.CreatedAt = time.Now()
	r.hubs[h.ID] = h
	return nil
}

func (r *memHubRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Hub, error) {
	h, ok := r.hubs[id]
	if !ok {
		return nil, errNotFound
	}
	return h, nil
}

func (r *memHubRepo) FindByName(_ context.Context, name string) (*model.Hub, error) {
	for _, h := range r.hubs {
		if h.Name == name {
			return h, nil
		}
	}
	return nil, errNotFound
}

func (r *memHubRepo) List(_ context.Context) ([]model.Hub, error) {
	out := make([]model.Hub, 0, len(r.hubs))
	for _, h := range r.hubs {
		out = append(out, *h)
	}
	return out, nil
}

func (r *memHubRepo) Update(_ context.Context, h *model.Hub) error {
	r.hubs[h.ID] = h
	return nil
}

func (r *memHubRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.hubs[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.hubs, id)
	return nil
}

func (r *memHubRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.hubs)), nil
}

// ── Empleados ────────────────────────────────────────────────────────────────

type memEmpleadoRepo struct {
	empleados map[uuid.UUID]*model.Empleado
	cells     *memAsistenciaRepo
}

func newMemEmpleadoRepo(cells *memAsistenciaRepo) *memEmpleadoRepo {
	return &memEmpleadoRepo{empleados: make(map[uuid.UUID]*model.Empleado), cells: cells}
}

func (r *memEmpleadoRepo) Create(_ context.Context, e *model.Empleado) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.empleados[e.ID] = e
	return nil
}

func (r *memEmpleadoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Empleado, error) {
	e, ok := r.empleados[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *memEmpleadoRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Empleado, error) {
	var out []model.Empleado
	for _, e := range r.empleados {
		if e.HubID == hubID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *memEmpleadoRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.empleados[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.empleados, id)
	if r.cells != nil {
		for key, cell := range r.cells.cells {
			if cell.EmpleadoID == id {
				delete(r.cells.cells, key)
			}
		}
	}
	return nil
}

// ── Asistencias ──────────────────────────────────────────────────────────────

type memAsistenciaRepo struct {
	// keyed by "<empleado>_<fecha>", mirroring the unique index
	cells map[string]*model.Asistencia
}

func newMemAsistenciaRepo() *memAsistenciaRepo {
	return &memAsistenciaRepo{cells: make(map[string]*model.Asistencia)}
}

func cellKey(empleadoID uuid.UUID, fecha string) string {
	return empleadoID.String() + "_" + fecha
}

func (r *memAsistenciaRepo) ListByHubMonth(_ context.Context, hubID uuid.UUID, from, to string) ([]model.Asistencia, error) {
	var out []model.Asistencia
	for _, c := range r.cells {
		if c.HubID == hubID && c.Fecha >= from && c.Fecha <= to {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memAsistenciaRepo) Upsert(_ context.Context, a *model.Asistencia) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	key := cellKey(a.EmpleadoID, a.Fecha)
	if prev, ok := r.cells[key]; ok {
		a.ID = prev.ID
	}
	clone := *a
	r.cells[key] = &clone
	return nil
}

func (r *memAsistenciaRepo) DeleteByKey(_ context.Context, empleadoID uuid.UUID, fecha string) error {
	delete(r.cells, cellKey(empleadoID, fecha))
	return nil
}

// ── Rutas ────────────────────────────────────────────────────────────────────

type memRutaRepo struct {
	rutas map[uuid.UUID]*model.Ruta
}

func newMemRutaRepo() *memRutaRepo {
	return &memRutaRepo{rutas: make(map[uuid.UUID]*model.Ruta)}
}

func (r *memRutaRepo) addRuta(hubID uuid.UUID, name string) uuid.UUID {
	ruta := &model.Ruta{ID: uuid.New(), HubID: hubID, Name: name}
	r.rutas[ruta.ID] = ruta
	return ruta.ID
}

func (r *memRutaRepo) Create(_ context.Context, ruta *model.Ruta) error {
	if ruta.ID == uuid.Nil {
		ruta.ID = uuid.New()
	}
	r.rutas[ruta.ID] = ruta
	return nil
}

func (r *memRutaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Ruta, error) {
	ruta, ok := r.rutas[id]
	if !ok {
		return nil, errNotFound
	}
	return ruta, nil
}

func (r *memRutaRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Ruta, error) {
	var out []model.Ruta
	for _, ruta := range r.rutas {
		if ruta.HubID == hubID {
			out = append(out, *ruta)
		}
	}
	return out, nil
}

func (r *memRutaRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rutas[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rutas, id)
	return nil
}

// ── Liquidaciones ────────────────────────────────────────────────────────────

type memLiquidacionRepo struct {
	rows map[string]*model.Liquidacion // keyed by "<ruta>_<fecha>"
}

func newMemLiquidacionRepo() *memLiquidacionRepo {
	return &memLiquidacionRepo{rows: make(map[string]*model.Liquidacion)}
}

func (r *memLiquidacionRepo) ListByRutaMonth(_ context.Context, rutaID uuid.UUID, from, to string) ([]model.Liquidacion, error) {
	var out []model.Liquidacion
	for _, l := range r.rows {
		if l.RutaID == rutaID && l.Fecha >= from && l.Fecha <= to {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memLiquidacionRepo) ListByHubMonth(_ context.Context, hubID uuid.UUID, from, to string) ([]model.Liquidacion, error) {
	var out []model.Liquidacion
	for _, l := range r.rows {
		if l.HubID == hubID && l.Fecha >= from && l.Fecha <= to {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *memLiquidacionRepo) Upsert(_ context.Context, l *model.Liquidacion) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	key := l.RutaID.String() + "_" + l.Fecha
	if prev, ok := r.rows[key]; ok {
		l.ID = prev.ID
	}
	clone := *l
	r.rows[key] = &clone
	return nil
}

// ── Kilos/Litros ─────────────────────────────────────────────────────────────

type memKilosRepo struct {
	rows map[uuid.UUID]*model.KilosLitros
}

func newMemKilosRepo() *memKilosRepo {
	return &memKilosRepo{rows: make(map[uuid.UUID]*model.KilosLitros)}
}

func (r *memKilosRepo) Create(_ context.Context, k *model.KilosLitros) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	k.CreatedAt = time.Now()
	clone := *k
	r.rows[k.ID] = &clone
	return nil
}

func (r *memKilosRepo) FindByID(_ context.Context, id uuid.UUID) (*model.KilosLitros, error) {
	k, ok := r.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *k
	return &clone, nil
}

func (r *memKilosRepo) ListByHubMonth(_ context.Context, hubID uuid.UUID, from, to string) ([]model.KilosLitros, error) {
	var out []model.KilosLitros
	for _, k := range r.rows {
		if k.HubID == hubID && k.Fecha >= from && k.Fecha <= to {
			out = append(out, *k)
		}
	}
	return out, nil
}

func (r *memKilosRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.rows[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.rows, id)
	return nil
}

// ── Compras ──────────────────────────────────────────────────────────────────

type memCompraRepo struct {
	compras map[uuid.UUID]*model.Compra
}

func newMemCompraRepo() *memCompraRepo {
	return &memCompraRepo{compras: make(map[uuid.UUID]*model.Compra)}
}

func (r *memCompraRepo) Create(_ context.Context, c *model.Compra) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.compras[c.ID] = &clone
	return nil
}

func (r *memCompraRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Compra, error) {
	c, ok := r.compras[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memCompraRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Compra, error) {
	var out []model.Compra
	for _, c := range r.compras {
		if c.HubID == hubID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memCompraRepo) Update(_ context.Context, c *model.Compra) error {
	clone := *c
	r.compras[c.ID] = &clone
	return nil
}

func (r *memCompraRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.compras[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.compras, id)
	return nil
}

// ── Festivos ─────────────────────────────────────────────────────────────────

type memFestivoRepo struct {
	festivos map[uuid.UUID]*model.DiaFestivo
}

func newMemFestivoRepo() *memFestivoRepo {
	return &memFestivoRepo{festivos: make(map[uuid.UUID]*model.DiaFestivo)}
}

func (r *memFestivoRepo) Create(_ context.Context, f *model.DiaFestivo) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	clone := *f
	r.festivos[f.ID] = &clone
	return nil
}

func (r *memFestivoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.DiaFestivo, error) {
	f, ok := r.festivos[id]
	if !ok {
		return nil, errNotFound
	}
	return f, nil
}

func (r *memFestivoRepo) ListByHubYear(_ context.Context, hubID uuid.UUID, from, to string) ([]model.DiaFestivo, error) {
	var out []model.DiaFestivo
	for _, f := range r.festivos {
		if f.HubID == hubID && f.Fecha >= from && f.Fecha <= to {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *memFestivoRepo) ExistsByKey(_ context.Context, hubID uuid.UUID, fecha, name string) (bool, error) {
	for _, f := range r.festivos {
		if f.HubID == hubID && f.Fecha == fecha && f.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memFestivoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.festivos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.festivos, id)
	return nil
}

// ── Restricciones ────────────────────────────────────────────────────────────

type memRestriccionRepo struct {
	restricciones map[uuid.UUID]*model.RestriccionHoraria
}

func newMemRestriccionRepo() *memRestriccionRepo {
	return &memRestriccionRepo{restricciones: make(map[uuid.UUID]*model.RestriccionHoraria)}
}

func (r *memRestriccionRepo) Create(_ context.Context, rest *model.RestriccionHoraria) error {
	if rest.ID == uuid.Nil {
		rest.ID = uuid.New()
	}
	clone := *rest
	r.restricciones[rest.ID] = &clone
	return nil
}

func (r *memRestriccionRepo) FindByID(_ context.Context, id uuid.UUID) (*model.RestriccionHoraria, error) {
	rest, ok := r.restricciones[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *rest
	return &clone, nil
}

func (r *memRestriccionRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.RestriccionHoraria, error) {
	var out []model.RestriccionHoraria
	for _, rest := range r.restricciones {
		if rest.HubID == hubID {
			out = append(out, *rest)
		}
	}
	return out, nil
}

func (r *memRestriccionRepo) Update(_ context.Context, rest *model.RestriccionHoraria) error {
	clone := *rest
	r.restricciones[rest.ID] = &clone
	return nil
}

func (r *memRestriccionRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.restricciones[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.restricciones, id)
	return nil
}

// ── Flota ────────────────────────────────────────────────────────────────────

type memVehiculoRepo struct {
	vehiculos   map[uuid.UUID]*model.Vehiculo
	incidencias *memIncidenciaRepo
}

func newMemVehiculoRepo(incidencias *memIncidenciaRepo) *memVehiculoRepo {
	return &memVehiculoRepo{vehiculos: make(map[uuid.UUID]*model.Vehiculo), incidencias: incidencias}
}

func (r *memVehiculoRepo) Create(_ context.Context, v *model.Vehiculo) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	clone := *v
	r.vehiculos[v.ID] = &clone
	return nil
}

func (r *memVehiculoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Vehiculo, error) {
	v, ok := r.vehiculos[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *v
	return &clone, nil
}

func (r *memVehiculoRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Vehiculo, error) {
	var out []model.Vehiculo
	for _, v := range r.vehiculos {
		if v.HubID == hubID {
			out = append(out, *v)
		}
	}
	return out, nil
}

func (r *memVehiculoRepo) Update(_ context.Context, v *model.Vehiculo) error {
	clone := *v
	r.vehiculos[v.ID] = &clone
	return nil
}

func (r *memVehiculoRepo) DeleteCascade(_ context.Context, id uuid.UUID) error {
	if _, ok := r.vehiculos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.vehiculos, id)
	if r.incidencias != nil {
		for incID, inc := range r.incidencias.incidencias {
			if inc.VehiculoID == id {
				delete(r.incidencias.incidencias, incID)
			}
		}
	}
	return nil
}

type memIncidenciaRepo struct {
	incidencias map[uuid.UUID]*model.Incidencia
}

func newMemIncidenciaRepo() *memIncidenciaRepo {
	return &memIncidenciaRepo{incidencias: make(map[uuid.UUID]*model.Incidencia)}
}

func (r *memIncidenciaRepo) Create(_ context.Context, i *model.Incidencia) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	i.CreatedAt = time.Now()
	clone := *i
	r.incidencias[i.ID] = &clone
	return nil
}

func (r *memIncidenciaRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Incidencia, error) {
	i, ok := r.incidencias[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *i
	return &clone, nil
}

func (r *memIncidenciaRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Incidencia, error) {
	var out []model.Incidencia
	for _, i := range r.incidencias {
		if i.HubID == hubID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *memIncidenciaRepo) ListByVehiculo(_ context.Context, vehiculoID uuid.UUID) ([]model.Incidencia, error) {
	var out []model.Incidencia
	for _, i := range r.incidencias {
		if i.VehiculoID == vehiculoID {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *memIncidenciaRepo) Update(_ context.Context, i *model.Incidencia) error {
	clone := *i
	r.incidencias[i.ID] = &clone
	return nil
}

func (r *memIncidenciaRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.incidencias[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.incidencias, id)
	return nil
}

// ── Contactos ────────────────────────────────────────────────────────────────

type memContactoRepo struct {
	contactos map[uuid.UUID]*model.Contacto
}

func newMemContactoRepo() *memContactoRepo {
	return &memContactoRepo{contactos: make(map[uuid.UUID]*model.Contacto)}
}

func (r *memContactoRepo) Create(_ context.Context, c *model.Contacto) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	r.contactos[c.ID] = &clone
	return nil
}

func (r *memContactoRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Contacto, error) {
	c, ok := r.contactos[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *memContactoRepo) ListByHub(_ context.Context, hubID uuid.UUID) ([]model.Contacto, error) {
	var out []model.Contacto
	for _, c := range r.contactos {
		if c.HubID == hubID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *memContactoRepo) Update(_ context.Context, c *model.Contacto) error {
	clone := *c
	r.contactos[c.ID] = &clone
	return nil
}

func (r *memContactoRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.contactos[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.contactos, id)
	return nil
}

// ── Registros ────────────────────────────────────────────────────────────────

type memRegistroRepo struct {
	registros map[uuid.UUID]*model.Registro
}

func newMemRegistroRepo() *memRegistroRepo {
	return &memRegistroRepo{registros: make(map[uuid.UUID]*model.Registro)}
}

func (r *memRegistroRepo) Create(_ context.Context, reg *model.Registro) error {
	if reg.ID == uuid.Nil {
		reg.ID = uuid.New()
	}
	reg.CreatedAt = time.Now()
	reg.UpdatedAt = reg.CreatedAt
	clone := *reg
	r.registros[reg.ID] = &clone
	return nil
}

func (r *memRegistroRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Registro, error) {
	reg, ok := r.registros[id]
	if !ok {
		return nil, errNotFound
	}
	clone := *reg
	return &clone, nil
}

func (r *memRegistroRepo) List(_ context.Context, hubID uuid.UUID, category string) ([]model.Registro, error) {
	var out []model.Registro
	for _, reg := range r.registros {
		if hubID != uuid.Nil && reg.HubID != hubID {
			continue
		}
		if category != "" && reg.Category != category {
			continue
		}
		out = append(out, *reg)
	}
	return out, nil
}

func (r *memRegistroRepo) Update(_ context.Context, reg *model.Registro) error {
	reg.UpdatedAt = time.Now()
	clone := *reg
	r.registros[reg.ID] = &clone
	return nil
}

func (r *memRegistroRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.registros[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.registros, id)
	return nil
}

func (r *memRegistroRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.registros)), nil
}

func (r *memRegistroRepo) CountByCategory(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, reg := range r.registros {
		out[reg.Category]++
	}
	return out, nil
}
