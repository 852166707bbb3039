package config

// DefaultConfigPath is used when no --config flag is given.
// DefaultConfigPath 在未提供 --config 标志时使用。
const DefaultConfigPath = "/etc/foamtab/config.yaml"

// DefaultConfigTemplate is written by 'foamtab init'. Kept as a literal
// so the generated file carries comments.
// DefaultConfigTemplate 由 'foamtab init' 写入。保留为字面量以便生成的文件
// 带有注释。
const DefaultConfigTemplate = `# foamtab configuration
# foamtab 配置文件

logging:
  # Write diagnostics to a rotated file instead of stderr
  # 将诊断信息写入轮转文件而不是 stderr
  enabled: false
  level: "info"
  path: "/var/log/foamtab/foamtab.log"
  max_size: 10
  max_backups: 3
  max_age: 30
  compress: true

convert:
  # Overwrite an existing output file without asking
  # 无需确认即覆盖已存在的输出文件
  force: false
  # Keep reading as the solver appends to the log
  # 在求解器持续追加日志时保持读取
  follow: false
  # Only emit rows for which this expression is true, e.g.
  # 仅输出使该表达式为真的行，例如
  # where: "converged && niter > 2"
  where: ""
`
