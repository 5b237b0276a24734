/*
 * @module service/models/patient
 * @description 患者输入模型，定义筛查表单的全部字段、默认值和声明式字段边界校验表
 * @architecture 分层架构 - 共享模型层
 * @documentReference ai_docs/risk_screening_impl.md
 * @stateFlow 请求解码 -> 默认值填充 -> 边界校验 -> 进入预测流水线
 * @rules 字段边界以数据驱动的校验表维护，便于穷举单元测试；校验失败返回 ValidationError
 * @dependencies 无外部依赖
 * @refs api/controllers/predict_controller.go, service/prediction/features.go
 */

package models

// 预测模式
const (
	ModeScreening = "screening"
	ModeBalanced  = "balanced"
)

// PatientInput 患者自报健康属性，字段命名与训练数据列名保持一致
type PatientInput struct {
	// 核心必填字段
	BMI          float64 `json:"BMI"`
	Age          int     `json:"Age"`     // 年龄分段 1=18-24 ... 13=80+
	GenHlth      int     `json:"GenHlth"` // 自评健康 1=很好 5=很差
	PhysActivity int     `json:"PhysActivity"`

	// 可选字段，缺省按 NewPatientInput 的默认值处理
	HighBP               int `json:"HighBP"`
	HighChol             int `json:"HighChol"`
	CholCheck            int `json:"CholCheck"`
	Smoker               int `json:"Smoker"`
	Stroke               int `json:"Stroke"`
	HeartDiseaseorAttack int `json:"HeartDiseaseorAttack"`
	Fruits               int `json:"Fruits"`
	Veggies              int `json:"Veggies"`
	HvyAlcoholConsump    int `json:"HvyAlcoholConsump"`
	AnyHealthcare        int `json:"AnyHealthcare"`
	NoDocbcCost          int `json:"NoDocbcCost"`
	MentHlth             int `json:"MentHlth"` // 过去30天心理状态不佳天数
	PhysHlth             int `json:"PhysHlth"` // 过去30天身体状态不佳天数
	DiffWalk             int `json:"DiffWalk"`
	Sex                  int `json:"Sex"`
	Education            int `json:"Education"`
	Income               int `json:"Income"`

	// 预测模式，仅影响上报的决策阈值，不影响概率计算
	Mode string `json:"mode"`
}

// NewPatientInput 创建带默认值的患者输入，与训练侧文档约定的缺省值一致
func NewPatientInput() *PatientInput {
	return &PatientInput{
		CholCheck:     1,
		AnyHealthcare: 1,
		Education:     4,
		Income:        5,
		Mode:          ModeScreening,
	}
}

// FieldBound 单个字段的取值边界
type FieldBound struct {
	Name  string
	Min   float64
	Max   float64
	Value func(p *PatientInput) float64
}

// PatientFieldBounds 全部字段的边界校验表
var PatientFieldBounds = []FieldBound{
	{"BMI", 10, 80, func(p *PatientInput) float64 { return p.BMI }},
	{"Age", 1, 13, func(p *PatientInput) float64 { return float64(p.Age) }},
	{"GenHlth", 1, 5, func(p *PatientInput) float64 { return float64(p.GenHlth) }},
	{"PhysActivity", 0, 1, func(p *PatientInput) float64 { return float64(p.PhysActivity) }},
	{"HighBP", 0, 1, func(p *PatientInput) float64 { return float64(p.HighBP) }},
	{"HighChol", 0, 1, func(p *PatientInput) float64 { return float64(p.HighChol) }},
	{"CholCheck", 0, 1, func(p *PatientInput) float64 { return float64(p.CholCheck) }},
	{"Smoker", 0, 1, func(p *PatientInput) float64 { return float64(p.Smoker) }},
	{"Stroke", 0, 1, func(p *PatientInput) float64 { return float64(p.Stroke) }},
	{"HeartDiseaseorAttack", 0, 1, func(p *PatientInput) float64 { return float64(p.HeartDiseaseorAttack) }},
	{"Fruits", 0, 1, func(p *PatientInput) float64 { return float64(p.Fruits) }},
	{"Veggies", 0, 1, func(p *PatientInput) float64 { return float64(p.Veggies) }},
	{"HvyAlcoholConsump", 0, 1, func(p *PatientInput) float64 { return float64(p.HvyAlcoholConsump) }},
	{"AnyHealthcare", 0, 1, func(p *PatientInput) float64 { return float64(p.AnyHealthcare) }},
	{"NoDocbcCost", 0, 1, func(p *PatientInput) float64 { return float64(p.NoDocbcCost) }},
	{"MentHlth", 0, 30, func(p *PatientInput) float64 { return float64(p.MentHlth) }},
	{"PhysHlth", 0, 30, func(p *PatientInput) float64 { return float64(p.PhysHlth) }},
	{"DiffWalk", 0, 1, func(p *PatientInput) float64 { return float64(p.DiffWalk) }},
	{"Sex", 0, 1, func(p *PatientInput) float64 { return float64(p.Sex) }},
	{"Education", 1, 6, func(p *PatientInput) float64 { return float64(p.Education) }},
	{"Income", 1, 8, func(p *PatientInput) float64 { return float64(p.Income) }},
}

// Validate 按边界校验表逐字段校验，并校验预测模式取值
func (p *PatientInput) Validate() error {
	for _, bound := range PatientFieldBounds {
		v := bound.Value(p)
		if v < bound.Min || v > bound.Max {
			return NewValidationError(bound.Name, "取值 %g 超出范围 [%g, %g]", v, bound.Min, bound.Max)
		}
	}

	if p.Mode != ModeScreening && p.Mode != ModeBalanced {
		return NewValidationError("mode", "取值 %q 无效, 仅支持 screening 或 balanced", p.Mode)
	}

	return nil
}
