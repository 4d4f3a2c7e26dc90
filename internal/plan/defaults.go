package plan

import "weekwise/backend/internal/model"

// DefaultTitle is the poster title shown before any plan has been generated.
const DefaultTitle = "健身爱好者平衡型周训练计划"

// DefaultBoard returns a board pre-populated with the built-in balanced
// weekly plan. A merge overwrites these defaults slot by slot; slots the
// generated plan does not mention keep their default content.
func DefaultBoard() *Board {
	return &Board{
		Title: DefaultTitle,
		Days: map[Slot]Day{
			Monday: {
				Content: `上半身力量训练（胸、背、肩）
- 热身：动态拉伸5分钟
- 杠铃卧推 4组×8-10次
- 哑铃划船 4组×10次
- 哑铃肩推 3组×12次
- 俯卧撑 3组×15次
- 结束拉伸5分钟`,
				Duration: "60分钟",
				Notes:    "重点关注动作规范，重量可根据个人能力调整。",
			},
			Tuesday: {
				Content: `有氧训练（间歇跑）
- 热身慢跑5分钟
- 高强度间歇跑（1分钟快跑+2分钟慢走/慢跑，循环5次）
- 冷身走路5分钟
- 拉伸5分钟`,
				Duration: "45分钟",
				Notes:    "提升心肺耐力，注意呼吸节奏。",
			},
			Wednesday: {
				Content: `下半身力量训练（腿、臀）
- 热身：动态拉伸5分钟
- 深蹲 4组×10次
- 硬拉 4组×8次
- 弓步蹲 3组×12次（每腿）
- 臀桥 3组×15次
- 结束拉伸5分钟`,
				Duration: "60分钟",
				Notes:    "注意膝盖、腰部保护，动作标准。",
			},
			Thursday: {
				Content: `核心训练+低强度有氧
- 热身：动态拉伸5分钟
- 仰卧卷腹 3组×20次
- 平板支撑 3组×45秒
- 俄罗斯转体 3组×15次
- 有氧：快走或慢跑30分钟
- 拉伸5分钟`,
				Duration: "60分钟",
				Notes:    "核心训练结合低强度有氧，增强稳定性。",
			},
			Friday: {
				Content: `全身综合力量训练
- 热身：动态拉伸5分钟
- 复合动作循环3组：
   - 俯身划船 12次
   - 硬拉 10次
   - 俯卧撑 15次
   - 深蹲 12次
- 结束拉伸5分钟`,
				Duration: "60分钟",
				Notes:    "循环训练提升心率和整体力量，间歇30-60秒。",
			},
			Saturday: {
				Content: `有氧训练（户外骑行或游泳）
- 热身5分钟
- 骑行或游泳40分钟（保持中等强度）
- 拉伸5分钟`,
				Duration: "50分钟",
				Notes:    "选择喜欢的有氧方式，保持轻松愉快。",
			},
			Sunday: {
				Content: `恢复与放松
- 轻柔拉伸15分钟
- 泡沫轴放松10分钟
- 冥想或呼吸训练10分钟`,
				Duration: "35分钟",
				Notes:    "专注身体恢复，有助于下周训练。",
			},
		},
		Completed: map[Slot]bool{
			Monday: false, Tuesday: false, Wednesday: false, Thursday: false,
			Friday: false, Saturday: false, Sunday: false,
		},
		Tips: []string{
			"每组之间休息30-90秒，根据训练强度适当调整。",
			"注意补充水分，训练前后适量摄入蛋白质。",
			"若感到疲劳或不适，可适当调整训练量或休息。",
			"训练动作要规范，避免因追求重量而牺牲动作质量。",
		},
		Strategies: []model.TrainingStrategy{
			{Title: "渐进式负荷", Description: "每周可适当增加训练重量或组数"},
			{Title: "多样化训练", Description: "力量与有氧结合，避免训练疲劳"},
			{Title: "充分恢复", Description: "保证充足睡眠，有助肌肉修复"},
			{Title: "动作规范", Description: "安全和动作质量为主要优先级"},
			{Title: "有氧力量结合", Description: "两者结合效果最佳"},
			{Title: "早晨训练", Description: "坚持4周即可形成习惯"},
			{Title: "心理建设", Description: "完成后打勾增强成就感"},
			{Title: "强度管理", Description: "专注于完成动作和呼吸"},
		},
	}
}
