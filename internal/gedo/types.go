package gedo

import "encoding/json"

// Dates arrive as the backend's isoformat strings and are kept as strings:
// the client only displays them, never computes with them.

// User mirrors the backend user payload.
type User struct {
	ID                      int             `json:"id"`
	Username                string          `json:"username"`
	Email                   string          `json:"email"`
	Role                    string          `json:"role"`
	ObraID                  *int            `json:"obra_id"`
	MustChangePassword      bool            `json:"must_change_password"`
	PasswordChangedByAdmin  bool            `json:"password_changed_by_admin"`
	Ativo                   bool            `json:"ativo"`
	UltimoLogin             string          `json:"ultimo_login"`
	PasswordChangedAt       string          `json:"password_changed_at"`
	LastAdminPasswordChange string          `json:"last_admin_password_change"`
	CreatedAt               string          `json:"created_at"`
	UpdatedAt               string          `json:"updated_at"`
	PasswordStatus          *PasswordStatus `json:"password_status,omitempty"`
}

// PasswordStatus reports whether (and why) the user must change the
// password.
type PasswordStatus struct {
	MustChange               bool   `json:"must_change"`
	ChangedByAdmin           bool   `json:"changed_by_admin"`
	LastChange               string `json:"last_change"`
	CanChangeOwn             bool   `json:"can_change_own"`
	ChangeRestrictionMessage string `json:"change_restriction_message,omitempty"`
	DaysSinceLastChange      *int   `json:"days_since_last_change,omitempty"`
	NextChangeAllowed        string `json:"next_change_allowed,omitempty"`
}

// LoginResult is the successful login payload.
type LoginResult struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
	Warning string `json:"warning,omitempty"`
}

// Obra is a work/site.
type Obra struct {
	ID                        int    `json:"id"`
	Nome                      string `json:"nome"`
	Descricao                 string `json:"descricao"`
	Codigo                    string `json:"codigo"`
	Cliente                   string `json:"cliente"`
	DataInicio                string `json:"data_inicio"`
	DataTermino               string `json:"data_termino"`
	ResponsavelTecnico        string `json:"responsavel_tecnico"`
	ResponsavelAdministrativo string `json:"responsavel_administrativo"`
	Localizacao               string `json:"localizacao"`
	Status                    string `json:"status"`
	CreatedAt                 string `json:"created_at"`
	UpdatedAt                 string `json:"updated_at"`
}

// TipoRegistro is a record type.
type TipoRegistro struct {
	ID        int    `json:"id"`
	Nome      string `json:"nome"`
	Descricao string `json:"descricao"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Classificacao is a classification group/subgroup pair.
type Classificacao struct {
	ID        int    `json:"id"`
	Grupo     string `json:"grupo"`
	Subgrupo  string `json:"subgrupo"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// Registro is a document record.
type Registro struct {
	ID                    int    `json:"id"`
	Titulo                string `json:"titulo"`
	Descricao             string `json:"descricao"`
	TipoRegistro          *int   `json:"tipo_registro"`
	TipoRegistroNome      string `json:"tipo_registro_nome"`
	ClassificacaoGrupo    string `json:"classificacao_grupo"`
	ClassificacaoSubgrupo string `json:"classificacao_subgrupo"`
	DataRegistro          string `json:"data_registro"`
	CodigoNumero          string `json:"codigo_numero"`
	AutorNome             string `json:"autor_nome"`
	ObraNome              string `json:"obra_nome"`
	ObraCodigo            string `json:"obra_codigo"`
	AnexoURL              string `json:"anexo_url"`
	NomeArquivoOriginal   string `json:"nome_arquivo_original"`
	FormatoArquivo        string `json:"formato_arquivo"`
	TamanhoArquivo        *int64 `json:"tamanho_arquivo"`
	TemAnexo              bool   `json:"tem_anexo"`
	CreatedAt             string `json:"created_at"`
	UpdatedAt             string `json:"updated_at"`
}

// Pagination is the backend's page envelope.
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Estatisticas is the dashboard statistics panel.
type Estatisticas struct {
	TotalRegistros         int     `json:"total_registros"`
	RegistrosUltimos30Dias int     `json:"registros_ultimos_30_dias"`
	RegistrosComAnexo      int     `json:"registros_com_anexo"`
	MediaDiaria            float64 `json:"media_diaria"`
}

// Atividade is one recent-activity entry.
type Atividade struct {
	ID           int    `json:"id"`
	Descricao    string `json:"descricao"`
	DataRegistro string `json:"data_registro"`
	ObraNome     string `json:"obra_nome"`
	TipoNome     string `json:"tipo_nome"`
}

// TimelinePonto is one day of the dashboard timeline chart.
type TimelinePonto struct {
	Data      string `json:"data"`
	Registros int    `json:"registros"`
}

// TopTipo is one slice of the record-type distribution chart.
type TopTipo struct {
	Nome  string `json:"nome"`
	Total int    `json:"total"`
}

// Workflow is a notification-workflow configuration.
type Workflow struct {
	ID                 int      `json:"id"`
	ObraID             int      `json:"obra_id"`
	ObraNome           string   `json:"obra_nome"`
	Nome               string   `json:"nome"`
	Descricao          string   `json:"descricao"`
	ResponsaveisEmails []string `json:"responsaveis_emails"`
	TiposRegistroIDs   []int    `json:"tipos_registro_ids"`
	AssuntoEmail       string   `json:"assunto_email"`
	TemplateEmail      string   `json:"template_email"`
	Ativo              bool     `json:"ativo"`
	NotificarCriacao   bool     `json:"notificar_criacao"`
	NotificarEdicao    bool     `json:"notificar_edicao"`
	NotificarExclusao  bool     `json:"notificar_exclusao"`
	CreatedAt          string   `json:"created_at"`
	UpdatedAt          string   `json:"updated_at"`
}

// Configuracao is one settings entry. Valor is typed server-side
// (boolean/integer/json/string), so it stays raw here.
type Configuracao struct {
	ID              int             `json:"id"`
	Chave           string          `json:"chave"`
	Valor           json.RawMessage `json:"valor"`
	Descricao       string          `json:"descricao"`
	Tipo            string          `json:"tipo"`
	Categoria       string          `json:"categoria"`
	EditavelUsuario bool            `json:"editavel_usuario"`
	Personalizada   bool            `json:"personalizada"`
}

// Configuracoes is the settings listing, grouped by category.
type Configuracoes struct {
	Configuracoes map[string][]Configuracao `json:"configuracoes"`
	UsuarioAdmin  bool                      `json:"usuario_admin"`
}

// FiltrosDisponiveis is the search screen's filter metadata.
type FiltrosDisponiveis struct {
	Obras                   []Obra         `json:"obras"`
	TiposRegistro           []TipoRegistro `json:"tipos_registro"`
	TiposRegistroExistentes []int          `json:"tipos_registro_existentes"`
	Autores                 []Autor        `json:"autores"`
	FaixasData              FaixasData     `json:"faixas_data"`
	OpcoesOrdenacao         []Opcao        `json:"opcoes_ordenacao"`
}

// Autor identifies a record author in the filter metadata.
type Autor struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// FaixasData bounds the available date filters.
type FaixasData struct {
	CriacaoMin  string `json:"criacao_min"`
	CriacaoMax  string `json:"criacao_max"`
	RegistroMin string `json:"registro_min"`
	RegistroMax string `json:"registro_max"`
}

// Opcao is a value/label pair for a select input.
type Opcao struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// ResultadoPesquisa is a paginated search result.
type ResultadoPesquisa struct {
	Registros  []Registro `json:"registros"`
	Pagination Pagination `json:"pagination"`
}
